/*
Package exchangerates implements ExchangeRates contract, a rate oracle for PoA
tokens. Rates are stored as the price of one GAS in fiat cents and are pushed
by the contract owner; how the owner obtains them is out of the contract's
scope.

# Contract notifications

RateUpdated notification. It contains currency code and the new
rate.

	RateUpdated:
	  - name: currency
	    type: String
	  - name: rate
	    type: Integer
*/
package exchangerates
