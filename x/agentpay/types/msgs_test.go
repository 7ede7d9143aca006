package types

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMsgValidateBasic(t *testing.T) {
	provider := testAddr(1, 20).String()
	requester := testAddr(2, 20).String()
	listing := testAddr(3, 32).String()
	task := testAddr(4, 32).String()
	id := bytes.Repeat([]byte{7}, IDLength)
	hash := bytes.Repeat([]byte{8}, ResultHashLength)
	g1 := make([]byte, G1PointLength)
	g2 := make([]byte, G2PointLength)

	tests := []struct {
		name string
		msg  interface{ ValidateBasic() error }
		err  error
	}{
		{"register ok", &MsgRegisterService{Provider: provider, ServiceID: id, Description: "ok", PriceLamports: 1}, nil},
		{"register bad provider", &MsgRegisterService{Provider: "nope", ServiceID: id}, ErrInvalidAddress},
		{"register short id", &MsgRegisterService{Provider: provider, ServiceID: id[:15]}, ErrInvalidID},
		{"register long description", &MsgRegisterService{Provider: provider, ServiceID: id, Description: strings.Repeat("a", 129)}, ErrDescriptionTooLong},
		{"deactivate ok", &MsgDeactivateService{Provider: provider, ServiceListing: listing}, nil},
		{"create ok", &MsgCreateTask{Requester: requester, ServiceListing: listing, TaskID: id, Deadline: 10}, nil},
		{"create long description", &MsgCreateTask{Requester: requester, ServiceListing: listing, TaskID: id, Deadline: 10, Description: strings.Repeat("a", 257)}, ErrDescriptionTooLong},
		{"create zero deadline", &MsgCreateTask{Requester: requester, ServiceListing: listing, TaskID: id}, ErrDeadlineInPast},
		{"submit ok", &MsgSubmitResult{Provider: provider, Task: task, ResultHash: hash}, nil},
		{"submit short hash", &MsgSubmitResult{Provider: provider, Task: task, ResultHash: hash[:31]}, ErrInvalidResultHash},
		{"submit zk ok", &MsgSubmitResultZK{Provider: provider, Task: task, ResultHash: hash, ProofA: g1, ProofB: g2, ProofC: g1}, nil},
		{"submit zk bad proof", &MsgSubmitResultZK{Provider: provider, Task: task, ResultHash: hash, ProofA: g1, ProofB: g1, ProofC: g1}, ErrZkProofVerificationFailed},
		{"accept ok", &MsgAcceptResult{Requester: requester, Task: task, ServiceListing: listing}, nil},
		{"accept missing listing", &MsgAcceptResult{Requester: requester, Task: task}, ErrInvalidAddress},
		{"dispute ok", &MsgDisputeTask{Requester: requester, Task: task}, nil},
		{"expire ok", &MsgExpireTask{Caller: requester, Task: task}, nil},
		{"verify ok", &MsgVerifyReputation{Caller: requester, ServiceListing: listing, ProviderCommitment: hash, ProofA: g1, ProofB: g2, ProofC: g1}, nil},
		{"verify short commitment", &MsgVerifyReputation{Caller: requester, ServiceListing: listing, ProviderCommitment: hash[:4], ProofA: g1, ProofB: g2, ProofC: g1}, ErrReputationTooLow},
		{"params ok", &MsgUpdateParams{Authority: provider, Params: DefaultParams()}, nil},
		{"params bad denom", &MsgUpdateParams{Authority: provider, Params: Params{EscrowDenom: "!"}}, ErrInvalidParams},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestProofHelpers(t *testing.T) {
	raw := make([]byte, 2*G1PointLength+G2PointLength)
	for i := range raw {
		raw[i] = byte(i)
	}
	p, err := ParseGroth16Proof(raw)
	require.NoError(t, err)
	require.Equal(t, raw, p.Bytes())
	require.Equal(t, byte(G1PointLength), p.B[0])

	_, err = ParseGroth16Proof(raw[1:])
	require.ErrorIs(t, err, ErrZkProofVerificationFailed)

	in := PublicInputFromUint64(258)
	require.Equal(t, byte(1), in[30])
	require.Equal(t, byte(2), in[31])
}
