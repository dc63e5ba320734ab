package main

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/poa-contract/deploy"
	"gopkg.in/yaml.v3"
)

// assetFile is the YAML description of the asset passed to the deploy command.
type assetFile struct {
	Name               string    `yaml:"name"`
	Symbol             string    `yaml:"symbol"`
	FiatCurrency       string    `yaml:"fiat_currency"`
	Broker             string    `yaml:"broker"`
	Custodian          string    `yaml:"custodian"`
	TargetSupply       string    `yaml:"target_supply"`
	StartTime          time.Time `yaml:"start_time"`
	FundingTimeout     string    `yaml:"funding_timeout"`
	ActivationTimeout  string    `yaml:"activation_timeout"`
	FundingGoalInCents int64     `yaml:"funding_goal_in_cents"`

	// Price of 1 GAS in fiat cents, zero keeps the on-chain rate.
	Rate      int64    `yaml:"rate"`
	Whitelist []string `yaml:"whitelist"`
}

// decodeAsset reads asset description and fills corresponding deploy
// parameters.
func decodeAsset(r io.Reader, prm *deploy.Prm) error {
	var f assetFile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err != nil {
		return fmt.Errorf("decode YAML: %w", err)
	}

	a := deploy.AssetPrm{
		Name:               f.Name,
		Symbol:             f.Symbol,
		FiatCurrency:       f.FiatCurrency,
		StartTime:          f.StartTime,
		FundingGoalInCents: f.FundingGoalInCents,
	}

	a.Broker, err = decodeAddress(f.Broker)
	if err != nil {
		return fmt.Errorf("broker: %w", err)
	}
	a.Custodian, err = decodeAddress(f.Custodian)
	if err != nil {
		return fmt.Errorf("custodian: %w", err)
	}

	if f.TargetSupply != "" {
		var ok bool
		a.TargetSupply, ok = new(big.Int).SetString(f.TargetSupply, 10)
		if !ok {
			return fmt.Errorf("target supply: invalid integer %q", f.TargetSupply)
		}
	}

	a.FundingTimeout, err = decodeDuration(f.FundingTimeout, deploy.MinFundingTimeout)
	if err != nil {
		return fmt.Errorf("funding timeout: %w", err)
	}
	a.ActivationTimeout, err = decodeDuration(f.ActivationTimeout, deploy.MinActivationTimeout)
	if err != nil {
		return fmt.Errorf("activation timeout: %w", err)
	}

	whitelist := make([]util.Uint160, 0, len(f.Whitelist))
	for i := range f.Whitelist {
		h, err := decodeAddress(f.Whitelist[i])
		if err != nil {
			return fmt.Errorf("whitelist #%d: %w", i, err)
		}
		whitelist = append(whitelist, h)
	}

	prm.Asset = a
	prm.Rate = f.Rate
	prm.Whitelisted = whitelist

	return nil
}

func decodeAddress(s string) (util.Uint160, error) {
	if s == "" {
		return util.Uint160{}, nil
	}
	return address.StringToUint160(s)
}

func decodeDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
