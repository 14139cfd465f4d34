package contract

import "polkapad_sale/sdk"

// Sale-wide configuration: creation, token address, and the gate that
// permanently freezes configuration.

// doCreateSale applies the admin's sale parameters exactly once.
func doCreateSale(caller sdk.Address, params *SaleParameters) (*Sale, *SaleError) {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return nil, err
	}
	if sale.IsCreated.closed() {
		return nil, fail(ErrInvalidConfiguration, "sale is already created")
	}
	if params.Owner.IsZero() {
		return nil, fail(ErrInvalidConfiguration, "invalid sale owner address")
	}
	if params.TokensToSell.IsZero() {
		return nil, fail(ErrInvalidConfiguration, "amount of tokens must be greater than zero")
	}
	if params.TokenPriceInGear.IsZero() {
		return nil, fail(ErrInvalidConfiguration, "token price must be greater than zero")
	}
	sale.Owner = params.Owner
	sale.Token = params.Token
	if !params.Staking.IsZero() {
		sale.Staking = params.Staking
	}
	sale.TokensToSell = params.TokensToSell
	sale.TokenPriceInGear = params.TokenPriceInGear
	sale.RegistrationFeeGear = params.RegistrationFeeGear
	sale.IsCreated.set()
	saveSale(sale)
	return sale, nil
}

// doSetSaleToken repoints the sale-token ledger; allowed until gate close.
func doSetSaleToken(caller sdk.Address, token sdk.Address) *SaleError {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return err
	}
	if err := sale.requireGateOpen(); err != nil {
		return err
	}
	if token.IsZero() {
		return fail(ErrInvalidConfiguration, "token address must not be zero")
	}
	sale.Token = token
	saveSale(sale)
	return nil
}

// doCloseGate latches the configuration shut once everything the sale needs
// is in place: parameters, token, deposited inventory, registration window.
func doCloseGate(caller sdk.Address) *SaleError {
	sale := mustLoadSale()
	if err := sale.requireAdmin(caller); err != nil {
		return err
	}
	if err := sale.requireGateOpen(); err != nil {
		return err
	}
	if err := sale.requireCreated(); err != nil {
		return err
	}
	if sale.Token.IsZero() {
		return fail(ErrInvalidConfiguration, "token is not set")
	}
	if !sale.TokensDeposited.closed() {
		return fail(ErrInvalidConfiguration, "tokens are not deposited")
	}
	if !loadRegistrationRound().configured() {
		return fail(ErrInvalidConfiguration, "registration params are not set")
	}
	sale.GateClosed.set()
	saveSale(sale)
	return nil
}
