package deploy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
	"github.com/nspcc-dev/poa-contract/rpc/poatoken"
	"github.com/nspcc-dev/poa-contract/rpc/registry"
	"go.uber.org/zap"
)

// Blockchain groups services provided by particular Neo blockchain network
// that are required for PoA deployment.
type Blockchain interface {
	// RPCActor groups functions needed to compose and send transactions to the
	// blockchain.
	actor.RPCActor

	// GetContractStateByHash returns network state of the smart contract by its
	// address. GetContractStateByHash returns error with 'Unknown contract'
	// substring if requested contract is missing.
	GetContractStateByHash(util.Uint160) (*state.Contract, error)
}

// CommonDeployPrm groups common deployment parameters of the smart contract.
type CommonDeployPrm struct {
	NEF      nef.File
	Manifest manifest.Manifest

	// Address of the contract already deployed by the local account. Optional:
	// when missing, the address is derived from the local account, NEF and
	// contract name (or, for collaborators, taken from the registry). On-chain
	// contract with different NEF is updated.
	Address util.Uint160
}

// AssetPrm describes the asset tokenized by PoA Token contract. It's passed
// to the `setup` method of the contract.
type AssetPrm struct {
	Name         string
	Symbol       string
	FiatCurrency string

	Broker    util.Uint160
	Custodian util.Uint160

	// Number of token units minted when the funding goal is reached exactly.
	TargetSupply *big.Int

	StartTime         time.Time
	FundingTimeout    time.Duration
	ActivationTimeout time.Duration

	FundingGoalInCents int64
}

// Prm groups all parameters of the PoA deployment procedure.
type Prm struct {
	// Writes progress into the log.
	Logger *zap.Logger

	// Particular Neo blockchain instance the PoA contracts are deployed to.
	Blockchain Blockchain

	// Local process account used for transaction signing (must be unlocked).
	// It becomes the owner of all deployed contracts and pays for everything.
	LocalAccount *wallet.Account

	Registry      CommonDeployPrm
	Whitelist     CommonDeployPrm
	ExchangeRates CommonDeployPrm
	FeeManager    CommonDeployPrm
	PoAToken      CommonDeployPrm

	Asset AssetPrm

	// Price of 1 GAS in cents of Asset.FiatCurrency set in the rates contract.
	// Zero keeps the on-chain value.
	Rate int64

	// Addresses added to the whitelist.
	Whitelisted []util.Uint160
}

// Result contains addresses of the PoA contracts on the chain.
type Result struct {
	Registry      util.Uint160
	Whitelist     util.Uint160
	ExchangeRates util.Uint160
	FeeManager    util.Uint160
	PoAToken      util.Uint160
}

// Deploy brings the PoA contracts to the blockchain represented by given
// Prm.Blockchain.
//
// Summary of stages:
//  1. deployment/update of the registry, whitelist, exchange rates and fee
//     manager contracts
//  2. registration of the collaborators in the registry
//  3. initial exchange rate and whitelist records
//  4. deployment/update of the PoA Token contract
//  5. asset setup
//
// Every stage checks the current chain state first, so Deploy may be called
// repeatedly: it only sends transactions changing something.
func Deploy(ctx context.Context, prm Prm) (Result, error) {
	var res Result

	err := prm.Asset.validate()
	if err != nil {
		return res, fmt.Errorf("invalid asset parameters: %w", err)
	}
	if prm.Rate < 0 {
		return res, errors.New("negative exchange rate")
	}

	act, err := actor.NewSimple(prm.Blockchain, prm.LocalAccount)
	if err != nil {
		return res, fmt.Errorf("init transaction sender from local account: %w", err)
	}

	syncPrm := syncContractPrm{
		logger:     prm.Logger,
		blockchain: prm.Blockchain,
		actor:      act,
		owner:      prm.LocalAccount.ScriptHash(),
	}

	// 1. Registry
	syncPrm.common = prm.Registry

	prm.Logger.Info("synchronizing Registry contract with the chain...")

	res.Registry, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync Registry contract with the chain: %w", err)
	}

	prm.Logger.Info("Registry contract successfully synchronized", zap.Stringer("address", res.Registry))

	reg := registry.New(act, res.Registry)

	// 2. Collaborators
	for _, c := range []struct {
		name   string
		common CommonDeployPrm
		res    *util.Uint160
	}{
		{registry.NameWhitelist, prm.Whitelist, &res.Whitelist},
		{registry.NameExchangeRates, prm.ExchangeRates, &res.ExchangeRates},
		{registry.NameFeeManager, prm.FeeManager, &res.FeeManager},
	} {
		syncPrm.common = c.common
		if syncPrm.common.Address.Equals(util.Uint160{}) {
			syncPrm.common.Address, err = registeredAddress(reg, c.name)
			if err != nil {
				return res, err
			}
		}

		prm.Logger.Info("synchronizing collaborator contract with the chain...", zap.String("name", c.name))

		*c.res, err = syncContract(ctx, syncPrm)
		if err != nil {
			return res, fmt.Errorf("sync %s contract with the chain: %w", c.name, err)
		}

		prm.Logger.Info("collaborator contract successfully synchronized",
			zap.String("name", c.name), zap.Stringer("address", *c.res))

		err = registerContract(ctx, prm.Logger, act, reg, c.name, *c.res)
		if err != nil {
			return res, fmt.Errorf("register %s contract: %w", c.name, err)
		}
	}

	// 3. Rates and whitelist
	if prm.Rate > 0 {
		err = setRate(ctx, prm.Logger, act, res.ExchangeRates, prm.Asset.FiatCurrency, prm.Rate)
		if err != nil {
			return res, fmt.Errorf("set %s rate: %w", prm.Asset.FiatCurrency, err)
		}
	}

	for i := range prm.Whitelisted {
		err = whitelist(ctx, prm.Logger, act, res.Whitelist, prm.Whitelisted[i])
		if err != nil {
			return res, fmt.Errorf("whitelist %s: %w", prm.Whitelisted[i].StringLE(), err)
		}
	}

	// 4. PoA Token
	syncPrm.common = prm.PoAToken

	prm.Logger.Info("synchronizing PoA Token contract with the chain...")

	res.PoAToken, err = syncContract(ctx, syncPrm)
	if err != nil {
		return res, fmt.Errorf("sync PoA Token contract with the chain: %w", err)
	}

	prm.Logger.Info("PoA Token contract successfully synchronized", zap.Stringer("address", res.PoAToken))

	// 5. Setup
	err = setupAsset(ctx, prm.Logger, act, res.PoAToken, res.Registry, prm.Asset)
	if err != nil {
		return res, fmt.Errorf("setup asset: %w", err)
	}

	return res, nil
}

type syncContractPrm struct {
	logger     *zap.Logger
	blockchain Blockchain
	actor      *actor.Actor
	owner      util.Uint160
	common     CommonDeployPrm
}

// syncContract deploys the contract if it's missing on the chain and updates
// it if its NEF differs from the local one. Returns contract address.
func syncContract(ctx context.Context, prm syncContractPrm) (util.Uint160, error) {
	if err := ctx.Err(); err != nil {
		return util.Uint160{}, err
	}

	addr := prm.common.Address
	if addr.Equals(util.Uint160{}) {
		addr = state.CreateContractHash(prm.owner, prm.common.NEF.Checksum, prm.common.Manifest.Name)
	}

	l := prm.logger.With(zap.String("contract", prm.common.Manifest.Name), zap.Stringer("address", addr))

	onChain, err := prm.blockchain.GetContractStateByHash(addr)
	if err != nil {
		if !isErrContractNotFound(err) {
			return addr, fmt.Errorf("get contract state: %w", err)
		}
		if !prm.common.Address.Equals(util.Uint160{}) {
			return addr, fmt.Errorf("contract is missing on the chain: %w", err)
		}

		l.Info("contract is missing on the chain, deploying...")

		err = await(prm.actor)(management.New(prm.actor).Deploy(&prm.common.NEF, &prm.common.Manifest, []any{prm.owner}))
		if err != nil {
			return addr, fmt.Errorf("deploy contract: %w", err)
		}

		l.Info("contract successfully deployed")

		return addr, nil
	}

	if onChain.NEF.Checksum == prm.common.NEF.Checksum {
		l.Info("contract is already up-to-date")
		return addr, nil
	}

	bNEF, err := prm.common.NEF.Bytes()
	if err != nil {
		return addr, fmt.Errorf("encode NEF: %w", err)
	}

	jManifest, err := json.Marshal(prm.common.Manifest)
	if err != nil {
		return addr, fmt.Errorf("encode manifest: %w", err)
	}

	l.Info("contract on the chain differs from the local one, updating...")

	err = await(prm.actor)(prm.actor.SendCall(addr, "update", bNEF, jManifest, nil))
	if err != nil {
		return addr, fmt.Errorf("update contract: %w", err)
	}

	l.Info("contract successfully updated")

	return addr, nil
}

func registeredAddress(reg *registry.Contract, name string) (util.Uint160, error) {
	h, err := reg.GetContractAddress(name)
	if errors.Is(err, registry.ErrUnknownContract) {
		return util.Uint160{}, nil
	}
	if err != nil {
		return util.Uint160{}, fmt.Errorf("resolve %s in the registry: %w", name, err)
	}
	return h, nil
}

func registerContract(ctx context.Context, l *zap.Logger, act *actor.Actor, reg *registry.Contract, name string, h util.Uint160) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	registered, err := registeredAddress(reg, name)
	if err != nil {
		return err
	}
	if registered.Equals(h) {
		l.Debug("contract is already registered", zap.String("name", name))
		return nil
	}

	l.Info("registering contract...", zap.String("name", name), zap.Stringer("address", h))

	return await(act)(reg.UpdateContractAddress(name, h))
}

func setRate(ctx context.Context, l *zap.Logger, act *actor.Actor, rates util.Uint160, currency string, rate int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cur, err := unwrap.Int64(act.Call(rates, "getRate", currency))
	if err != nil {
		return fmt.Errorf("read current rate: %w", err)
	}
	if cur == rate {
		l.Debug("exchange rate is already set", zap.String("currency", currency), zap.Int64("rate", rate))
		return nil
	}

	l.Info("setting exchange rate...", zap.String("currency", currency), zap.Int64("rate", rate))

	return await(act)(act.SendCall(rates, "setRate", currency, rate))
}

func whitelist(ctx context.Context, l *zap.Logger, act *actor.Actor, wl util.Uint160, addr util.Uint160) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := unwrap.Bool(act.Call(wl, "isWhitelisted", addr))
	if err != nil {
		return fmt.Errorf("check whitelist: %w", err)
	}
	if ok {
		l.Debug("address is already whitelisted", zap.Stringer("address", addr))
		return nil
	}

	l.Info("whitelisting address...", zap.Stringer("address", addr))

	return await(act)(act.SendCall(wl, "addAddress", addr))
}

func setupAsset(ctx context.Context, l *zap.Logger, act *actor.Actor, token, reg util.Uint160, a AssetPrm) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c := poatoken.New(act, token)

	_, err := c.CreationTime()
	if err == nil {
		l.Info("asset is already set up, skip")
		return nil
	}
	if !strings.Contains(err.Error(), "not initialized") {
		return fmt.Errorf("check asset state: %w", err)
	}

	l.Info("setting up the asset...", zap.String("name", a.Name), zap.String("symbol", a.Symbol))

	err = await(act)(c.Setup(a.Name, a.Symbol, a.FiatCurrency, a.Broker, a.Custodian, reg,
		a.TargetSupply,
		big.NewInt(a.StartTime.UnixMilli()),
		big.NewInt(a.FundingTimeout.Milliseconds()),
		big.NewInt(a.ActivationTimeout.Milliseconds()),
		big.NewInt(a.FundingGoalInCents),
	))
	if err != nil {
		return err
	}

	l.Info("asset successfully set up")

	return nil
}

// await returns function waiting for the transaction sent by act to be
// accepted with HALT state.
func await(act *actor.Actor) func(util.Uint256, uint32, error) error {
	return func(h util.Uint256, vub uint32, err error) error {
		if err != nil {
			return fmt.Errorf("send transaction: %w", err)
		}

		res, err := act.Wait(h, vub, nil)
		if err != nil {
			return fmt.Errorf("wait for transaction %s: %w", h.StringLE(), err)
		}

		if res.VMState != vmstate.Halt {
			return fmt.Errorf("transaction %s failed: %s", h.StringLE(), res.FaultException)
		}

		return nil
	}
}

func isErrContractNotFound(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "unknown contract")
}
