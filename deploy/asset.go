package deploy

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Limits checked by PoA Token contract on setup.
const (
	MinFundingTimeout    = 24 * time.Hour
	MinActivationTimeout = 7 * MinFundingTimeout

	maxCurrencyLength = 8
)

// MinTargetSupply is the lowest target supply accepted by PoA Token
// contract, 1 token with 18 decimals.
var MinTargetSupply = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

var errMissingParameter = errors.New("missing parameter")

func (a AssetPrm) validate() error {
	switch {
	case a.Name == "":
		return fmt.Errorf("%w: name", errMissingParameter)
	case a.Symbol == "":
		return fmt.Errorf("%w: symbol", errMissingParameter)
	case a.FiatCurrency == "":
		return fmt.Errorf("%w: fiat currency", errMissingParameter)
	case a.Broker.Equals(util.Uint160{}):
		return fmt.Errorf("%w: broker", errMissingParameter)
	case a.Custodian.Equals(util.Uint160{}):
		return fmt.Errorf("%w: custodian", errMissingParameter)
	case a.TargetSupply == nil:
		return fmt.Errorf("%w: target supply", errMissingParameter)
	case a.StartTime.IsZero():
		return fmt.Errorf("%w: start time", errMissingParameter)
	}

	if !isCurrencyCode(a.FiatCurrency) {
		return fmt.Errorf("invalid fiat currency code %q", a.FiatCurrency)
	}
	if a.TargetSupply.Cmp(MinTargetSupply) < 0 {
		return fmt.Errorf("target supply %s is less than %s", a.TargetSupply, MinTargetSupply)
	}
	if a.FundingGoalInCents < 1 {
		return errors.New("funding goal must be positive")
	}
	if a.FundingTimeout < MinFundingTimeout {
		return fmt.Errorf("funding timeout %s is less than %s", a.FundingTimeout, MinFundingTimeout)
	}
	if a.ActivationTimeout < MinActivationTimeout {
		return fmt.Errorf("activation timeout %s is less than %s", a.ActivationTimeout, MinActivationTimeout)
	}

	return nil
}

func isCurrencyCode(s string) bool {
	if len(s) == 0 || len(s) > maxCurrencyLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
