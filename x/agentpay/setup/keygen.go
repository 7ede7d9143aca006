// Package setup compiles the agentpay circuits, runs the Groth16 setup,
// persists the resulting keys and produces proofs for clients.
package setup

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"

	"github.com/agentpay-chain/agentpay/x/agentpay/circuits"
	"github.com/agentpay-chain/agentpay/x/agentpay/verifier"
)

// CircuitNames lists every circuit a key pair can be generated for.
var CircuitNames = []string{circuits.ResultCircuitName, circuits.ReputationCircuitName}

// NewCircuit returns an empty circuit definition by name.
func NewCircuit(name string) (frontend.Circuit, error) {
	switch name {
	case circuits.ResultCircuitName:
		return new(circuits.ResultCircuit), nil
	case circuits.ReputationCircuitName:
		return new(circuits.ReputationCircuit), nil
	default:
		return nil, fmt.Errorf("unknown circuit %q", name)
	}
}

// Compile builds the R1CS for a named circuit.
func Compile(name string) (constraint.ConstraintSystem, error) {
	circuit, err := NewCircuit(name)
	if err != nil {
		return nil, err
	}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit)
	if err != nil {
		return nil, fmt.Errorf("failed to compile circuit %s: %w", name, err)
	}
	return ccs, nil
}

// KeyMetadata contains information about a generated key pair.
type KeyMetadata struct {
	CircuitID        string    `json:"circuit_id"`
	CreatedAt        time.Time `json:"created_at"`
	Algorithm        string    `json:"algorithm"`
	Curve            string    `json:"curve"`
	ConstraintCount  int       `json:"constraint_count"`
	PublicInputs     int       `json:"public_inputs"`
	VerifyingKeyHash string    `json:"verifying_key_hash"`

	// Security
	Sealed        bool   `json:"sealed"`
	EncryptionAlg string `json:"encryption_alg,omitempty"`
	KDFAlgorithm  string `json:"kdf_algorithm,omitempty"`
}

// KeyGenerator manages the generation and storage of circuit keys. With a
// password set, proving keys are sealed at rest with Argon2id and AES-256-GCM;
// verifying keys are always stored in the clear.
type KeyGenerator struct {
	storage  KeyStorage
	password []byte
	kdf      KDFParams
	now      func() time.Time
}

// NewKeyGenerator creates a new key generator instance.
func NewKeyGenerator(storage KeyStorage, password []byte) *KeyGenerator {
	return &KeyGenerator{
		storage:  storage,
		password: password,
		kdf:      DefaultKDFParams,
		now:      time.Now,
	}
}

// WithKDFParams overrides the Argon2id cost parameters.
func (kg *KeyGenerator) WithKDFParams(p KDFParams) *KeyGenerator {
	kg.kdf = p
	return kg
}

// ProvingKeyID returns the storage id of a circuit's proving key.
func ProvingKeyID(circuitID string) string { return circuitID + ".pk" }

// VerifyingKeyID returns the storage id of a circuit's verifying key.
func VerifyingKeyID(circuitID string) string { return circuitID + ".vk" }

// MetadataID returns the storage id of a circuit's key metadata.
func MetadataID(circuitID string) string { return circuitID + ".json" }

// GenerateKeys runs a fresh Groth16 setup for a circuit and stores the keys.
// This is a single-party setup and suits development networks only.
func (kg *KeyGenerator) GenerateKeys(ctx context.Context, circuitID string) (*KeyMetadata, error) {
	ccs, err := Compile(circuitID)
	if err != nil {
		return nil, err
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, fmt.Errorf("failed to setup keys: %w", err)
	}

	var pkBuf, vkBuf bytes.Buffer
	if _, err := pk.WriteTo(&pkBuf); err != nil {
		return nil, fmt.Errorf("failed to serialize proving key: %w", err)
	}
	if _, err := vk.WriteTo(&vkBuf); err != nil {
		return nil, fmt.Errorf("failed to serialize verifying key: %w", err)
	}

	vkHash := sha256.Sum256(vkBuf.Bytes())
	metadata := &KeyMetadata{
		CircuitID:        circuitID,
		CreatedAt:        kg.now().UTC(),
		Algorithm:        "groth16",
		Curve:            "bn254",
		ConstraintCount:  ccs.GetNbConstraints(),
		PublicInputs:     ccs.GetNbPublicVariables() - 1,
		VerifyingKeyHash: hex.EncodeToString(vkHash[:]),
	}

	pkBytes := pkBuf.Bytes()
	if len(kg.password) > 0 {
		pkBytes, err = seal(pkBytes, kg.password, circuitID, kg.kdf)
		if err != nil {
			return nil, fmt.Errorf("failed to seal proving key: %w", err)
		}
		metadata.Sealed = true
		metadata.EncryptionAlg = "AES-256-GCM"
		metadata.KDFAlgorithm = "Argon2id"
	}

	metaBytes, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return nil, err
	}

	if err := kg.storage.Store(ctx, VerifyingKeyID(circuitID), vkBuf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to store verifying key: %w", err)
	}
	if err := kg.storage.Store(ctx, ProvingKeyID(circuitID), pkBytes); err != nil {
		return nil, fmt.Errorf("failed to store proving key: %w", err)
	}
	if err := kg.storage.Store(ctx, MetadataID(circuitID), metaBytes); err != nil {
		return nil, fmt.Errorf("failed to store key metadata: %w", err)
	}
	return metadata, nil
}

// LoadMetadata reads the metadata written alongside a key pair.
func (kg *KeyGenerator) LoadMetadata(ctx context.Context, circuitID string) (*KeyMetadata, error) {
	bz, err := kg.storage.Load(ctx, MetadataID(circuitID))
	if err != nil {
		return nil, err
	}
	var m KeyMetadata
	if err := json.Unmarshal(bz, &m); err != nil {
		return nil, fmt.Errorf("failed to decode key metadata: %w", err)
	}
	return &m, nil
}

// LoadVerifier loads a circuit's verifying key as a proof verifier.
func (kg *KeyGenerator) LoadVerifier(ctx context.Context, circuitID string) (*verifier.Groth16Verifier, error) {
	bz, err := kg.storage.Load(ctx, VerifyingKeyID(circuitID))
	if err != nil {
		return nil, err
	}
	return verifier.ReadVerifyingKey(bytes.NewReader(bz))
}

// LoadProvingKey loads and, if needed, unseals a circuit's proving key.
func (kg *KeyGenerator) LoadProvingKey(ctx context.Context, circuitID string) (groth16.ProvingKey, error) {
	bz, err := kg.storage.Load(ctx, ProvingKeyID(circuitID))
	if err != nil {
		return nil, err
	}
	if IsSealed(bz) {
		if len(kg.password) == 0 {
			return nil, fmt.Errorf("proving key for %s is sealed, a password is required", circuitID)
		}
		bz, err = unseal(bz, kg.password, circuitID, kg.kdf)
		if err != nil {
			return nil, fmt.Errorf("failed to unseal proving key: %w", err)
		}
	}

	pk := groth16.NewProvingKey(ecc.BN254)
	if _, err := pk.ReadFrom(bytes.NewReader(bz)); err != nil {
		return nil, fmt.Errorf("failed to deserialize proving key: %w", err)
	}
	return pk, nil
}

// LoadProver loads a proving key and compiles its circuit.
func (kg *KeyGenerator) LoadProver(ctx context.Context, circuitID string) (*Prover, error) {
	pk, err := kg.LoadProvingKey(ctx, circuitID)
	if err != nil {
		return nil, err
	}
	ccs, err := Compile(circuitID)
	if err != nil {
		return nil, err
	}
	return NewProver(circuitID, ccs, pk), nil
}
