/*
Package feemanager implements FeeManager contract, the sink of fees charged by
PoA tokens on activation and payouts.

# Contract notifications

FeePaid notification. It contains fee payer and fee amount in GAS.

	FeePaid:
	  - name: from
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package feemanager
