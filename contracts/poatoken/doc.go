/*
Package poatoken implements PoA (Proof of Asset) token contract. Each deployed
contract represents a single real-world asset funded by investors and paying
dividends to token holders.

The contract is a state machine. After Setup it is in PreFunding stage. The
custodian can open an optional fiat PreSale where off-chain contributions are
registered with BuyFiat. Once the start time comes, anyone can start the GAS
sale (Funding): whitelisted investors transfer GAS to the contract and receive
tokens in proportion to the fiat value of the contribution. Reaching the
funding goal moves the round to Pending, where the custodian activates the
asset by providing an IPFS hash of the custody proof. Raised GAS minus the fee
is credited to the broker and the token becomes transferable (Active).

Active asset pays dividends: the custodian transfers GAS with "payout" data and
every holder accrues its share which can be claimed at any time. Accrued
payouts stay with the holder after token transfer. Expired rounds are Failed,
PreSale rounds can be Cancelled; in both cases contributors reclaim their GAS.

All collaborator contracts (fee manager, exchange rates, whitelist) are
resolved through the registry contract on every call.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer

Approval notification. It is produced when the owner changes allowance of a
spender.

	Approval:
	  - name: owner
	    type: Hash160
	  - name: spender
	    type: Hash160
	  - name: amount
	    type: Integer

StageChanged notification. It contains the new stage of the round.

	StageChanged:
	  - name: stage
	    type: Integer

Buy notification. It contains GAS accepted from the investor and the number
of tokens minted.

	Buy:
	  - name: investor
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokens
	    type: Integer

FiatBuy notification. It contains fiat contribution registered by custodian.

	FiatBuy:
	  - name: investor
	    type: Hash160
	  - name: amountInCents
	    type: Integer
	  - name: tokens
	    type: Integer

Refund notification. It is produced when GAS above the funding goal is sent
back.

	Refund:
	  - name: investor
	    type: Hash160
	  - name: amount
	    type: Integer

Activated notification. It contains broker payout and the fee charged.

	Activated:
	  - name: broker
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: fee
	    type: Integer

Payout notification. It contains GAS paid by custodian, the fee charged and
the increment of per-token payout scaled by 1e18.

	Payout:
	  - name: amount
	    type: Integer
	  - name: fee
	    type: Integer
	  - name: perTokenIncrement
	    type: Integer

Claim notification.

	Claim:
	  - name: holder
	    type: Hash160
	  - name: amount
	    type: Integer

Reclaim notification. Amount is GAS sent back, amountInCents is fiat
contribution to be refunded off-chain.

	Reclaim:
	  - name: holder
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: amountInCents
	    type: Integer

ProofOfCustodyUpdated notification.

	ProofOfCustodyUpdated:
	  - name: proof
	    type: String

Pause and Unpause notifications have no parameters.

CustodianChanged notification.

	CustodianChanged:
	  - name: old
	    type: Hash160
	  - name: new
	    type: Hash160

WhitelistTransfersToggled notification.

	WhitelistTransfersToggled:
	  - name: enabled
	    type: Boolean
*/
package poatoken
