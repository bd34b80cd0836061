package keeper

import (
	"testing"
	"time"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	ccodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	ccrypto "github.com/cosmos/cosmos-sdk/crypto/types"
	"github.com/cosmos/cosmos-sdk/std"
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/x/auth"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/cosmos/cosmos-sdk/x/bank"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	"github.com/cosmos/cosmos-sdk/x/params"
	paramskeeper "github.com/cosmos/cosmos-sdk/x/params/keeper"
	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmversion "github.com/tendermint/tendermint/proto/tendermint/version"
	dbm "github.com/tendermint/tm-db"

	"github.com/tracks-network/tracks/x/trackauction/types"
)

var (
	// ModuleBasics is a mock module basic manager for testing
	ModuleBasics = module.NewBasicManager(
		auth.AppModuleBasic{},
		bank.AppModuleBasic{},
		params.AppModuleBasic{},
	)
)

var (
	// AccPrivKeys generate secp256k1 pubkeys to be used for account pub keys
	AccPrivKeys = []ccrypto.PrivKey{
		secp256k1.GenPrivKey(),
		secp256k1.GenPrivKey(),
		secp256k1.GenPrivKey(),
		secp256k1.GenPrivKey(),
		secp256k1.GenPrivKey(),
	}

	// AccPubKeys holds the pub keys for the account keys
	AccPubKeys = []ccrypto.PubKey{
		AccPrivKeys[0].PubKey(),
		AccPrivKeys[1].PubKey(),
		AccPrivKeys[2].PubKey(),
		AccPrivKeys[3].PubKey(),
		AccPrivKeys[4].PubKey(),
	}

	// AccAddrs holds the sdk.AccAddresses
	AccAddrs = []sdk.AccAddress{
		sdk.AccAddress(AccPubKeys[0].Address()),
		sdk.AccAddress(AccPubKeys[1].Address()),
		sdk.AccAddress(AccPubKeys[2].Address()),
		sdk.AccAddress(AccPubKeys[3].Address()),
		sdk.AccAddress(AccPubKeys[4].Address()),
	}

	// TestBidDenom is the native denom auctions settle in by default
	TestBidDenom = "stake"

	// TestNftContract is the whitelisted NFT contract of the default config
	TestNftContract = "track-registry"

	// TestTokenContract is a fungible token contract for token-settled tests
	TestTokenContract = "groove-token"

	// InitCoins holds the number of coins to initialize an account with
	InitCoins = sdk.NewCoins(sdk.NewInt64Coin(TestBidDenom, 1_000_000))

	// TestConfig is the module configuration installed by CreateTestEnv
	TestConfig = types.NewConfig(TestNftContract, types.NewNativePriceAsset(TestBidDenom))
)

// TrackTransfer records one NFT release performed by the module
type TrackTransfer struct {
	NftContract  string
	TrackTokenId string
	Recipient    sdk.AccAddress
}

// MockTrackKeeper stands in for the track NFT registry, recording every
// transfer the module performs
type MockTrackKeeper struct {
	Transfers []TrackTransfer
}

func (m *MockTrackKeeper) TransferTrack(ctx sdk.Context, nftContract string, trackTokenId string, recipient sdk.AccAddress) error {
	m.Transfers = append(m.Transfers, TrackTransfer{
		NftContract:  nftContract,
		TrackTokenId: trackTokenId,
		Recipient:    recipient,
	})
	return nil
}

// TokenTransfer records one fungible token release performed by the module
type TokenTransfer struct {
	TokenContract string
	Recipient     sdk.AccAddress
	Amount        sdk.Int
}

// MockTokenKeeper stands in for the fungible token registry, recording every
// transfer the module performs
type MockTokenKeeper struct {
	Transfers []TokenTransfer
}

func (m *MockTokenKeeper) Transfer(ctx sdk.Context, tokenContract string, recipient sdk.AccAddress, amount sdk.Int) error {
	m.Transfers = append(m.Transfers, TokenTransfer{
		TokenContract: tokenContract,
		Recipient:     recipient,
		Amount:        amount,
	})
	return nil
}

// TestInput stores the various keepers required to test the module
type TestInput struct {
	AuctionKeeper Keeper
	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	TrackKeeper   *MockTrackKeeper
	TokenKeeper   *MockTokenKeeper
	Context       sdk.Context
	Marshaler     codec.Codec
	LegacyAmino   *codec.LegacyAmino
}

// CreateTestEnv creates the keeper testing environment with real auth and
// bank keepers over an in-memory store, mock track and token registries, and
// the default config installed
func CreateTestEnv(t *testing.T) TestInput {
	t.Helper()

	// Initialize store keys
	auctionKey := sdk.NewKVStoreKey(types.StoreKey)
	keyAcc := sdk.NewKVStoreKey(authtypes.StoreKey)
	keyBank := sdk.NewKVStoreKey(banktypes.StoreKey)
	keyParams := sdk.NewKVStoreKey(paramstypes.StoreKey)
	tkeyParams := sdk.NewTransientStoreKey(paramstypes.TStoreKey)

	// Initialize memory database and mount stores on it
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(auctionKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyAcc, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyBank, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(keyParams, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(tkeyParams, sdk.StoreTypeTransient, db)
	err := ms.LoadLatestVersion()
	require.Nil(t, err)

	// Create sdk.Context
	// nolint: exhaustruct
	ctx := sdk.NewContext(ms, tmproto.Header{
		Version: tmversion.Consensus{
			Block: 0,
			App:   0,
		},
		ChainID: "",
		Height:  100,
		Time:    time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC),
	}, false, log.TestingLogger())

	cdc := MakeTestCodec()
	marshaler := MakeTestMarshaler()

	paramsKeeper := paramskeeper.NewKeeper(marshaler, cdc, keyParams, tkeyParams)
	paramsKeeper.Subspace(authtypes.ModuleName)
	paramsKeeper.Subspace(banktypes.ModuleName)

	// this is also used to initialize module accounts for all the map keys
	maccPerms := map[string][]string{
		authtypes.FeeCollectorName: nil,
		types.ModuleName:           {authtypes.Minter, authtypes.Burner},
	}

	accountKeeper := authkeeper.NewAccountKeeper(
		marshaler,
		keyAcc, // target store
		getSubspace(paramsKeeper, authtypes.ModuleName),
		authtypes.ProtoBaseAccount, // prototype
		maccPerms,
	)

	blockedAddr := make(map[string]bool, len(maccPerms))
	for acc := range maccPerms {
		blockedAddr[authtypes.NewModuleAddress(acc).String()] = true
	}
	bankKeeper := bankkeeper.NewBaseKeeper(
		marshaler,
		keyBank,
		accountKeeper,
		getSubspace(paramsKeeper, banktypes.ModuleName),
		blockedAddr,
	)
	bankKeeper.SetParams(ctx, banktypes.Params{
		SendEnabled:        []*banktypes.SendEnabled{},
		DefaultSendEnabled: true,
	})

	// set up the module accounts
	for name, perms := range maccPerms {
		mod := authtypes.NewEmptyModuleAccount(name, perms...)
		accountKeeper.SetModuleAccount(ctx, mod)
	}

	trackKeeper := &MockTrackKeeper{Transfers: nil}
	tokenKeeper := &MockTokenKeeper{Transfers: nil}

	k := NewKeeper(auctionKey, cdc, accountKeeper, bankKeeper, trackKeeper, tokenKeeper)

	require.NoError(t, k.SetConfig(ctx, TestConfig))

	// fund the test accounts
	for i := range AccAddrs {
		acc := accountKeeper.NewAccount(
			ctx,
			authtypes.NewBaseAccount(AccAddrs[i], AccPubKeys[i], uint64(i), 0),
		)
		accountKeeper.SetAccount(ctx, acc)
		require.NoError(t, bankKeeper.MintCoins(ctx, types.ModuleName, InitCoins))
		require.NoError(t, bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, acc.GetAddress(), InitCoins))
	}

	return TestInput{
		AuctionKeeper: k,
		AccountKeeper: accountKeeper,
		BankKeeper:    bankKeeper,
		TrackKeeper:   trackKeeper,
		TokenKeeper:   tokenKeeper,
		Context:       ctx,
		Marshaler:     marshaler,
		LegacyAmino:   cdc,
	}
}

// getSubspace returns a param subspace for a given module name.
func getSubspace(k paramskeeper.Keeper, moduleName string) paramstypes.Subspace {
	subspace, _ := k.GetSubspace(moduleName)
	return subspace
}

// MakeTestCodec creates a legacy amino codec for testing
func MakeTestCodec() *codec.LegacyAmino {
	var cdc = codec.NewLegacyAmino()
	auth.AppModuleBasic{}.RegisterLegacyAminoCodec(cdc)
	bank.AppModuleBasic{}.RegisterLegacyAminoCodec(cdc)
	sdk.RegisterLegacyAminoCodec(cdc)
	ccodec.RegisterCrypto(cdc)
	params.AppModuleBasic{}.RegisterLegacyAminoCodec(cdc)
	types.RegisterCodec(cdc)
	return cdc
}

// MakeTestMarshaler creates a proto codec for use in testing
func MakeTestMarshaler() codec.Codec {
	interfaceRegistry := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(interfaceRegistry)
	ModuleBasics.RegisterInterfaces(interfaceRegistry)
	return codec.NewProtoCodec(interfaceRegistry)
}

// CreateTestAuction opens an auction for the default config's NFT contract
// with a height-based duration, returning its id
func CreateTestAuction(t *testing.T, input TestInput, creator sdk.AccAddress, minimumBid int64, buyout *sdk.Int) uint64 {
	t.Helper()
	payload := types.NewCreateAuctionPayload(
		types.NewHeightDuration(100),
		sdk.NewInt(minimumBid),
		buyout,
	)
	id, err := input.AuctionKeeper.OnTrackReceived(
		input.Context, TestNftContract, creator.String(), "track-1", payload,
	)
	require.NoError(t, err)
	return id
}
