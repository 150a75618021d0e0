package crypto

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	eth_crypto "github.com/ethereum/go-ethereum/crypto"
)

type PV struct {
	privateKey *ecdsa.PrivateKey
}

// LoadFilePV reads a hex-encoded secp256k1 private key from keyFilePath.
func LoadFilePV(keyFilePath string) (*PV, error) {
	raw, err := os.ReadFile(keyFilePath)
	if err != nil {
		return nil, err
	}
	keyHex := strings.TrimSpace(string(raw))
	keyHex = strings.TrimPrefix(keyHex, "0x")
	d, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("error reading owner key from %v: %w", keyFilePath, err)
	}
	priv, err := eth_crypto.ToECDSA(d)
	if err != nil {
		return nil, fmt.Errorf("error reading owner key from %v: %w", keyFilePath, err)
	}
	return &PV{privateKey: priv}, nil
}

func (k *PV) PublicKey() []byte {
	return eth_crypto.FromECDSAPub(&k.privateKey.PublicKey)
}

func (k *PV) Address() string {
	return eth_crypto.PubkeyToAddress(k.privateKey.PublicKey).Hex()
}

// Sign produces a 65-byte [R || S || V] signature over the keccak hash of data.
func (k *PV) Sign(data []byte) ([]byte, error) {
	return eth_crypto.Sign(eth_crypto.Keccak256(data), k.privateKey)
}
