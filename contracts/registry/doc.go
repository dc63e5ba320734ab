/*
Package registry implements Registry contract which maps well-known names to the
hashes of collaborator contracts. PoA tokens resolve fee manager, exchange
rates and whitelist contracts through it on every call, so the owner can
replace any of them without redeploying the tokens.

# Contract notifications

ContractAddressUpdated notification. It contains registered name and
contract hash.

	ContractAddressUpdated:
	  - name: name
	    type: String
	  - name: hash
	    type: Hash160
*/
package registry
