package circuits

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	mimcbn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr/mimc"
)

// PreimageLength is how many bytes of SHA-256(result) form the circuit
// preimage. 31 bytes always fit in the BN254 scalar field.
const PreimageLength = 31

// ResultPreimage maps arbitrary result bytes to the field element the
// provider proves knowledge of.
func ResultPreimage(result []byte) fr.Element {
	sum := sha256.Sum256(result)
	var e fr.Element
	e.SetBytes(sum[:PreimageLength])
	return e
}

// ResultHash is MiMC(preimage), the value submitted on chain as result_hash.
func ResultHash(preimage fr.Element) [32]byte {
	return mimcSum(preimage)
}

// HashResult returns the preimage and on-chain result hash for result bytes.
func HashResult(result []byte) (fr.Element, [32]byte) {
	preimage := ResultPreimage(result)
	return preimage, ResultHash(preimage)
}

// ProviderCommitment is MiMC(score, salt), published by a provider so
// requesters can check threshold proofs without learning the score.
func ProviderCommitment(score uint64, salt fr.Element) [32]byte {
	var s fr.Element
	s.SetUint64(score)
	return mimcSum(s, salt)
}

// SaltFromBytes reduces arbitrary bytes to a salt field element.
func SaltFromBytes(bz []byte) fr.Element {
	var e fr.Element
	e.SetBytes(bz)
	return e
}

func mimcSum(elems ...fr.Element) [32]byte {
	h := mimcbn254.NewMiMC()
	for i := range elems {
		bz := elems[i].Bytes()
		// fr elements are canonical, Write cannot fail
		_, _ = h.Write(bz[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func toBigInt(bz [32]byte) *big.Int {
	return new(big.Int).SetBytes(bz[:])
}

func uint64ToBigInt(v uint64) *big.Int {
	var bz [8]byte
	binary.BigEndian.PutUint64(bz[:], v)
	return new(big.Int).SetBytes(bz[:])
}
