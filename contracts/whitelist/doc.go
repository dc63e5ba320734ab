/*
Package whitelist implements Whitelist contract. It stores the set of addresses
that passed off-chain verification and are allowed to buy and, optionally,
transfer PoA tokens.

# Contract notifications

Whitelisted notification. It contains the address added to the list.

	Whitelisted:
	  - name: address
	    type: Hash160

Delisted notification. It contains the address removed from the list.

	Delisted:
	  - name: address
	    type: Hash160
*/
package whitelist
