package bip44

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/hdvault/hdvault/bip32"
	"github.com/hdvault/hdvault/coinconf"
	"github.com/pkg/errors"
)

// BIP39 seed of "abandon abandon abandon abandon abandon abandon abandon
// abandon abandon abandon abandon about" with an empty passphrase.
const testSeedHex = "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc1" +
	"9a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"

func testSeed(t *testing.T) []byte {
	seed, err := hex.DecodeString(testSeedHex)
	if err != nil {
		t.Fatalf("DecodeString: %+v", err)
	}

	return seed
}

func TestMasterKeyVectors(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	if !master.IsLevel(LevelMaster) {
		t.Fatalf("expected a master level key but got %s", master.Level())
	}

	expectedPrivate := "xprv9s21ZrQH143K3GJpoapnV8SFfukcVBSfeCficPSGfubmSFDxo1kuHnLisriDvSnRRuL2Qrg5ggqHKNVpxR86QEC8w35uxmGoggxtQTPvfUu"
	if master.String() != expectedPrivate {
		t.Fatalf("expected master key %s but got %s", expectedPrivate, master.String())
	}

	masterPublic, err := master.ExtendedKey().Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	expectedPublic := "xpub661MyMwAqRbcFkPHucMnrGNzDwb6teAX1RbKQmqtEF8kK3Z7LZ59qafCjB9eCRLiTVG3uxBxgKvRgbubRhqSKXnGGb1aoaqLrpMBDrVxga8"
	if masterPublic.String() != expectedPublic {
		t.Fatalf("expected master public key %s but got %s", expectedPublic, masterPublic.String())
	}

	privateKey, err := master.ExtendedKey().PrivateKey()
	if err != nil {
		t.Fatalf("PrivateKey: %+v", err)
	}
	expectedRaw := "1837c1be8e2995ec11cda2b066151be2cfb48adf9e47b151d46adab3a21cdf67"
	if hex.EncodeToString(privateKey) != expectedRaw {
		t.Fatalf("expected raw private key %s but got %x", expectedRaw, privateKey)
	}

	publicKey, err := master.ExtendedKey().PublicKey()
	if err != nil {
		t.Fatalf("PublicKey: %+v", err)
	}
	expectedCompressed := "03d902f35f560e0470c63313c7369168d9d7df2d49bf295fd9fb7cb109ccee0494"
	if hex.EncodeToString(publicKey) != expectedCompressed {
		t.Fatalf("expected compressed public key %s but got %x", expectedCompressed, publicKey)
	}

	uncompressedPublicKey, err := master.ExtendedKey().UncompressedPublicKey()
	if err != nil {
		t.Fatalf("UncompressedPublicKey: %+v", err)
	}
	expectedUncompressed := "04d902f35f560e0470c63313c7369168d9d7df2d49bf295fd9fb7cb109ccee0494" +
		"7d000a1345d3845dd83b4c5814f876c918305b598f066c958fad972bf59f2ec7"
	if hex.EncodeToString(uncompressedPublicKey) != expectedUncompressed {
		t.Fatalf("expected uncompressed public key %s but got %x", expectedUncompressed, uncompressedPublicKey)
	}

	wif, err := master.WIF()
	if err != nil {
		t.Fatalf("WIF: %+v", err)
	}
	expectedWIF := "Kx2nc8CerNfcsutaet3rPwVtxQvXuQTYxw1mSsfFHsWExJ9xVpLf"
	if wif != expectedWIF {
		t.Fatalf("expected WIF %s but got %s", expectedWIF, wif)
	}
}

func deriveAddressKey(t *testing.T, conf *coinconf.Params, addressIndex uint32) *Key {
	master, err := FromSeed(testSeed(t), conf)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}

	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}

	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}

	changeKey, err := accountKey.Change(ChangeExternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}

	addressKey, err := changeKey.AddressIndex(addressIndex)
	if err != nil {
		t.Fatalf("AddressIndex: %+v", err)
	}

	return addressKey
}

func TestBIP44Addresses(t *testing.T) {
	expectedAddresses := []string{
		"1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA",
		"1Ak8PffB2meyfYnbXZR9EGfLfFZVpzJvQP",
		"1MNF5RSaabFwcbtJirJwKnDytsXXEsVsNb",
	}

	for i, expected := range expectedAddresses {
		addressKey := deriveAddressKey(t, coinconf.BitcoinMainNetBIP44, uint32(i))

		if !addressKey.IsLevel(LevelAddressIndex) {
			t.Fatalf("expected an address level key but got %s", addressKey.Level())
		}

		addr, err := addressKey.Address()
		if err != nil {
			t.Fatalf("Address: %+v", err)
		}
		if addr != expected {
			t.Fatalf("index %d: expected address %s but got %s", i, expected, addr)
		}
	}
}

func TestBIP49Address(t *testing.T) {
	addressKey := deriveAddressKey(t, coinconf.BitcoinMainNetBIP49, 0)

	addr, err := addressKey.Address()
	if err != nil {
		t.Fatalf("Address: %+v", err)
	}

	expected := "37VucYSaXLCAsxYyAPfbSi9eh4iEcbShgf"
	if addr != expected {
		t.Fatalf("expected address %s but got %s", expected, addr)
	}
}

func TestBIP84Addresses(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP84)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}
	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}
	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}

	accountPublic, err := accountKey.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	expectedAccountPublic := "zpub6rFR7y4Q2AijBEqTUquhVz398htDFrtymD9xYYfG1m4wAcvPhXNfE3EfH1r1ADqtfSdVCToUG868RvUUkgDKf31mGDtKsAYz2oz2AGutZYs"
	if accountPublic.String() != expectedAccountPublic {
		t.Fatalf("expected account public key %s but got %s", expectedAccountPublic, accountPublic.String())
	}

	changeKey, err := accountKey.Change(ChangeExternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}

	expectedAddresses := []string{
		"bc1qcr8te4kr609gcawutmrza0j4xv80jy8z306fyu",
		"bc1qnjg0jd8228aq7egyzacy8cys3knf9xvrerkf9g",
	}
	for i, expected := range expectedAddresses {
		addressKey, err := changeKey.AddressIndex(uint32(i))
		if err != nil {
			t.Fatalf("AddressIndex: %+v", err)
		}

		addr, err := addressKey.Address()
		if err != nil {
			t.Fatalf("Address: %+v", err)
		}
		if addr != expected {
			t.Fatalf("index %d: expected address %s but got %s", i, expected, addr)
		}
	}
}

func TestBIP86Addresses(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP86)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}
	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}
	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}

	accountPublic, err := accountKey.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	expectedAccountPublic := "xpub6BgBgsespWvERF3LHQu6CnqdvfEvtMcQjYrcRzx53QJjSxarj2afYWcLteoGVky7D3UKDP9QyrLprQ3VCECoY49yfdDEHGCtMMj92pReUsQ"
	if accountPublic.String() != expectedAccountPublic {
		t.Fatalf("expected account public key %s but got %s", expectedAccountPublic, accountPublic.String())
	}

	changeKey, err := accountKey.Change(ChangeExternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}

	expectedAddresses := []string{
		"bc1p5cyxnuxmeuwuvkwfem96lqzszd02n6xdcjrs20cac6yqjjwudpxqkedrcr",
		"bc1p4qhjn9zdvkux4e44uhx8tc55attvtyu358kutcqkudyccelu0was9fqzwh",
		"bc1p0d0rhyynq0awa9m8cqrcr8f5nxqx3aw29w4ru5u9my3h0sfygnzs9khxz8",
		"bc1py0vryk8aqusz65yzuudypggvswzkcpwtau8q0sjm0stctwup0xlqkkxler",
		"bc1pjpp8nwqvhkx6kdna6vpujdqglvz2304twfd308ve5ppyxpmcjufs7k6xyr",
	}
	for i, expected := range expectedAddresses {
		addressKey, err := changeKey.AddressIndex(uint32(i))
		if err != nil {
			t.Fatalf("AddressIndex: %+v", err)
		}

		addr, err := addressKey.Address()
		if err != nil {
			t.Fatalf("Address: %+v", err)
		}
		if addr != expected {
			t.Fatalf("index %d: expected address %s but got %s", i, expected, addr)
		}
	}
}

func TestAltcoinAddressPrefixes(t *testing.T) {
	tests := []struct {
		conf   *coinconf.Params
		prefix string
	}{
		{coinconf.LitecoinMainNetBIP44, "L"},
		{coinconf.DogecoinMainNetBIP44, "D"},
		{coinconf.LitecoinMainNetBIP84, "ltc1"},
		{coinconf.BitcoinTestNetBIP84, "tb1"},
	}

	for _, test := range tests {
		addressKey := deriveAddressKey(t, test.conf, 0)

		addr, err := addressKey.Address()
		if err != nil {
			t.Fatalf("Address: %+v", err)
		}
		if !strings.HasPrefix(addr, test.prefix) {
			t.Fatalf("%s: expected address with prefix %s but got %s", test.conf.Name, test.prefix, addr)
		}
	}
}

func TestLevelGuards(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}
	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}
	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}
	changeKey, err := accountKey.Change(ChangeExternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}
	addressKey, err := changeKey.AddressIndex(0)
	if err != nil {
		t.Fatalf("AddressIndex: %+v", err)
	}

	keys := []*Key{master, purposeKey, coinKey, accountKey, changeKey, addressKey}

	operations := []struct {
		name         string
		allowedLevel Level
		run          func(k *Key) error
	}{
		{
			name:         "Purpose",
			allowedLevel: LevelMaster,
			run:          func(k *Key) error { _, err := k.Purpose(); return err },
		},
		{
			name:         "DeriveDefaultPath",
			allowedLevel: LevelMaster,
			run:          func(k *Key) error { _, err := k.DeriveDefaultPath(); return err },
		},
		{
			name:         "Coin",
			allowedLevel: LevelPurpose,
			run:          func(k *Key) error { _, err := k.Coin(); return err },
		},
		{
			name:         "Account",
			allowedLevel: LevelCoin,
			run:          func(k *Key) error { _, err := k.Account(0); return err },
		},
		{
			name:         "Change",
			allowedLevel: LevelAccount,
			run:          func(k *Key) error { _, err := k.Change(ChangeExternal); return err },
		},
		{
			name:         "AddressIndex",
			allowedLevel: LevelChange,
			run:          func(k *Key) error { _, err := k.AddressIndex(0); return err },
		},
	}

	for _, key := range keys {
		for _, operation := range operations {
			err := operation.run(key)
			if key.Level() == operation.allowedLevel {
				if err != nil {
					t.Fatalf("%s at level %s: %+v", operation.name, key.Level(), err)
				}
			} else if !errors.Is(err, ErrDepth) {
				t.Fatalf("%s at level %s: expected ErrDepth but got %+v",
					operation.name, key.Level(), err)
			}
		}
	}
}

func TestPublicOnlyAccountDerivation(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}
	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}
	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}
	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}

	accountPublic, err := accountKey.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	if !accountPublic.IsPublicOnly() {
		t.Fatalf("expected a public-only key")
	}

	// The watch-only chain must reach the same addresses as the private one.
	changePublic, err := accountPublic.Change(ChangeExternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}
	addressPublic, err := changePublic.AddressIndex(0)
	if err != nil {
		t.Fatalf("AddressIndex: %+v", err)
	}

	watchOnlyAddress, err := addressPublic.Address()
	if err != nil {
		t.Fatalf("Address: %+v", err)
	}

	expected := "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA"
	if watchOnlyAddress != expected {
		t.Fatalf("expected address %s but got %s", expected, watchOnlyAddress)
	}

	_, err = addressPublic.WIF()
	if err == nil {
		t.Fatalf("expected an error deriving a WIF from a public-only key")
	}

	// Hardened derivation below a public-only key is impossible.
	_, err = accountPublic.ExtendedKey().Child(bip32.HardenIndex(0))
	if !errors.Is(err, bip32.ErrPrivateKeyRequired) {
		t.Fatalf("expected ErrPrivateKeyRequired but got %+v", err)
	}
}

func TestPublicMasterIsRejected(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	// Above the account level a public-only key can't derive anything
	// useful, so constructing one is refused outright.
	_, err = master.Public()
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth but got %+v", err)
	}

	masterPublic, err := master.ExtendedKey().Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}

	_, err = FromExtendedKey(masterPublic.String(), coinconf.BitcoinMainNetBIP44)
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth but got %+v", err)
	}
}

func TestFromExtendedKeyDepth(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	// A depth 3 public key is a valid account key.
	expectedAccountPublic := "xpub6BosfCnifzxcFwrSzQiqu2DBVTshkCXacvNsWGYJVVhhawA7d4R5WSWGFNbi8Aw6ZRc1brxMyWMzG3DSSSSoekkudhUd9yLb6qx39T9nMdj"
	accountPublic, err := FromExtendedKey(expectedAccountPublic, coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromExtendedKey: %+v", err)
	}
	if !accountPublic.IsLevel(LevelAccount) {
		t.Fatalf("expected an account level key but got %s", accountPublic.Level())
	}
	if !accountPublic.IsPublicOnly() {
		t.Fatalf("expected a public-only key")
	}

	// A depth 2 public key sits above the account level.
	purposePublic, err := master.ExtendedKey().Path("M/44'/0'")
	if err != nil {
		t.Fatalf("Path: %+v", err)
	}
	_, err = FromExtendedKey(purposePublic.String(), coinconf.BitcoinMainNetBIP44)
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth but got %+v", err)
	}

	// A depth 6 private key sits beyond the address index level.
	beyond, err := master.ExtendedKey().Path("m/44'/0'/0'/0/0/0")
	if err != nil {
		t.Fatalf("Path: %+v", err)
	}
	_, err = FromExtendedKey(beyond.String(), coinconf.BitcoinMainNetBIP44)
	if !errors.Is(err, ErrDepth) {
		t.Fatalf("expected ErrDepth but got %+v", err)
	}
}

func TestFromPrivateKeyIsMaster(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	privateKey, err := master.ExtendedKey().PrivateKey()
	if err != nil {
		t.Fatalf("PrivateKey: %+v", err)
	}

	fromRaw, err := FromPrivateKey(privateKey, coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromPrivateKey: %+v", err)
	}

	if !fromRaw.IsLevel(LevelMaster) {
		t.Fatalf("expected a master level key but got %s", fromRaw.Level())
	}

	// The chain code can't be recovered from a raw key, so the derived
	// tree legitimately differs from the seed's tree.
	if fromRaw.ExtendedKey().ChainCode != [32]byte{} {
		t.Fatalf("expected a zero chain code")
	}
}

func TestIndexValidation(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}
	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}
	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}

	_, err = coinKey.Account(bip32.HardenedIndexStart)
	if err == nil {
		t.Fatalf("expected an error for an account index with the hardened bit set")
	}

	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}

	_, err = accountKey.Change(ChangeType(2))
	if err == nil {
		t.Fatalf("expected an error for an unknown change type")
	}

	changeKey, err := accountKey.Change(ChangeInternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}

	_, err = changeKey.AddressIndex(bip32.HardenedIndexStart)
	if err == nil {
		t.Fatalf("expected an error for an address index with the hardened bit set")
	}
}

func TestDeriveDefaultPath(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	defaultKey, err := master.DeriveDefaultPath()
	if err != nil {
		t.Fatalf("DeriveDefaultPath: %+v", err)
	}

	if !defaultKey.IsLevel(LevelAddressIndex) {
		t.Fatalf("expected an address level key but got %s", defaultKey.Level())
	}

	explicit := deriveAddressKey(t, coinconf.BitcoinMainNetBIP44, 0)
	if defaultKey.String() != explicit.String() {
		t.Fatalf("default path key differs from the explicitly derived key")
	}
}

func TestSolanaDerivation(t *testing.T) {
	master, err := FromSeed(testSeed(t), coinconf.SolanaMainNetBIP44)
	if err != nil {
		t.Fatalf("FromSeed: %+v", err)
	}

	defaultKey, err := master.DeriveDefaultPath()
	if err != nil {
		t.Fatalf("DeriveDefaultPath: %+v", err)
	}

	// The Solana convention stops at the account level: m/44'/501'/0'.
	if !defaultKey.IsLevel(LevelAccount) {
		t.Fatalf("expected an account level key but got %s", defaultKey.Level())
	}

	purposeKey, err := master.Purpose()
	if err != nil {
		t.Fatalf("Purpose: %+v", err)
	}
	coinKey, err := purposeKey.Coin()
	if err != nil {
		t.Fatalf("Coin: %+v", err)
	}
	accountKey, err := coinKey.Account(0)
	if err != nil {
		t.Fatalf("Account: %+v", err)
	}

	if defaultKey.String() != accountKey.String() {
		t.Fatalf("default path key differs from the explicitly derived key")
	}

	addr, err := defaultKey.Address()
	if err != nil {
		t.Fatalf("Address: %+v", err)
	}
	if addr == "" {
		t.Fatalf("expected a non-empty address")
	}

	_, err = defaultKey.WIF()
	if err == nil {
		t.Fatalf("expected an error: solana does not define a WIF encoding")
	}

	// Every level below the account is hardened for ed25519, so the chain
	// can't continue from a public-only account key.
	accountPublic, err := accountKey.Public()
	if err != nil {
		t.Fatalf("Public: %+v", err)
	}
	_, err = accountPublic.Change(ChangeExternal)
	if !errors.Is(err, bip32.ErrPrivateKeyRequired) {
		t.Fatalf("expected ErrPrivateKeyRequired but got %+v", err)
	}

	// With the private key the change level derives fine, hardened.
	changeKey, err := accountKey.Change(ChangeExternal)
	if err != nil {
		t.Fatalf("Change: %+v", err)
	}
	if !bip32.IsHardened(changeKey.ExtendedKey().ChildNumber) {
		t.Fatalf("expected a hardened child number for an ed25519 change key")
	}
}

func TestLevelRoundTrip(t *testing.T) {
	accountKey := deriveAddressKey(t, coinconf.BitcoinMainNetBIP44, 0)

	decoded, err := FromExtendedKey(accountKey.String(), coinconf.BitcoinMainNetBIP44)
	if err != nil {
		t.Fatalf("FromExtendedKey: %+v", err)
	}

	if decoded.Level() != accountKey.Level() {
		t.Fatalf("expected level %s after decoding but got %s", accountKey.Level(), decoded.Level())
	}
	if decoded.String() != accountKey.String() {
		t.Fatalf("decoding and encoding the key didn't preserve the data")
	}
}
