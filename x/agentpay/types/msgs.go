package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type names
const (
	TypeMsgRegisterService   = "register_service"
	TypeMsgDeactivateService = "deactivate_service"
	TypeMsgCreateTask        = "create_task"
	TypeMsgSubmitResult      = "submit_result"
	TypeMsgSubmitResultZK    = "submit_result_zk"
	TypeMsgAcceptResult      = "accept_result"
	TypeMsgDisputeTask       = "dispute_task"
	TypeMsgExpireTask        = "expire_task"
	TypeMsgVerifyReputation  = "verify_reputation"
	TypeMsgUpdateParams      = "update_params"
)

var (
	_ sdk.Msg = &MsgRegisterService{}
	_ sdk.Msg = &MsgDeactivateService{}
	_ sdk.Msg = &MsgCreateTask{}
	_ sdk.Msg = &MsgSubmitResult{}
	_ sdk.Msg = &MsgSubmitResultZK{}
	_ sdk.Msg = &MsgAcceptResult{}
	_ sdk.Msg = &MsgDisputeTask{}
	_ sdk.Msg = &MsgExpireTask{}
	_ sdk.Msg = &MsgVerifyReputation{}
	_ sdk.Msg = &MsgUpdateParams{}
)

// ValidateBasic performs basic validation of MsgRegisterService
func (msg *MsgRegisterService) ValidateBasic() error {
	if _, err := ParseAddress("provider", msg.Provider); err != nil {
		return err
	}
	if _, err := ParseID(msg.ServiceID); err != nil {
		return err
	}
	_, err := NewListingDescription([]byte(msg.Description))
	return err
}

// ValidateBasic performs basic validation of MsgDeactivateService
func (msg *MsgDeactivateService) ValidateBasic() error {
	if _, err := ParseAddress("provider", msg.Provider); err != nil {
		return err
	}
	_, err := ParseAddress("service listing", msg.ServiceListing)
	return err
}

// ValidateBasic performs basic validation of MsgCreateTask
func (msg *MsgCreateTask) ValidateBasic() error {
	if _, err := ParseAddress("requester", msg.Requester); err != nil {
		return err
	}
	if _, err := ParseAddress("service listing", msg.ServiceListing); err != nil {
		return err
	}
	if _, err := ParseID(msg.TaskID); err != nil {
		return err
	}
	if msg.Deadline <= 0 {
		return ErrDeadlineInPast.Wrapf("deadline %d", msg.Deadline)
	}
	_, err := NewTaskDescription([]byte(msg.Description))
	return err
}

// ValidateBasic performs basic validation of MsgSubmitResult
func (msg *MsgSubmitResult) ValidateBasic() error {
	if _, err := ParseAddress("provider", msg.Provider); err != nil {
		return err
	}
	if _, err := ParseAddress("task", msg.Task); err != nil {
		return err
	}
	_, err := ParseResultHash(msg.ResultHash)
	return err
}

// ValidateBasic performs basic validation of MsgSubmitResultZK
func (msg *MsgSubmitResultZK) ValidateBasic() error {
	if _, err := ParseAddress("provider", msg.Provider); err != nil {
		return err
	}
	if _, err := ParseAddress("task", msg.Task); err != nil {
		return err
	}
	if _, err := ParseResultHash(msg.ResultHash); err != nil {
		return err
	}
	_, err := NewGroth16Proof(msg.ProofA, msg.ProofB, msg.ProofC)
	return err
}

// ValidateBasic performs basic validation of MsgAcceptResult
func (msg *MsgAcceptResult) ValidateBasic() error {
	if _, err := ParseAddress("requester", msg.Requester); err != nil {
		return err
	}
	if _, err := ParseAddress("task", msg.Task); err != nil {
		return err
	}
	_, err := ParseAddress("service listing", msg.ServiceListing)
	return err
}

// ValidateBasic performs basic validation of MsgDisputeTask
func (msg *MsgDisputeTask) ValidateBasic() error {
	if _, err := ParseAddress("requester", msg.Requester); err != nil {
		return err
	}
	_, err := ParseAddress("task", msg.Task)
	return err
}

// ValidateBasic performs basic validation of MsgExpireTask
func (msg *MsgExpireTask) ValidateBasic() error {
	if _, err := ParseAddress("caller", msg.Caller); err != nil {
		return err
	}
	_, err := ParseAddress("task", msg.Task)
	return err
}

// ValidateBasic performs basic validation of MsgVerifyReputation
func (msg *MsgVerifyReputation) ValidateBasic() error {
	if _, err := ParseAddress("caller", msg.Caller); err != nil {
		return err
	}
	if _, err := ParseAddress("service listing", msg.ServiceListing); err != nil {
		return err
	}
	if len(msg.ProviderCommitment) != PublicInputLength {
		return ErrReputationTooLow.Wrapf("provider commitment is %d bytes", len(msg.ProviderCommitment))
	}
	if _, err := NewGroth16Proof(msg.ProofA, msg.ProofB, msg.ProofC); err != nil {
		return ErrReputationTooLow.Wrap(err.Error())
	}
	return nil
}

// ValidateBasic performs basic validation of MsgUpdateParams
func (msg *MsgUpdateParams) ValidateBasic() error {
	if _, err := ParseAddress("authority", msg.Authority); err != nil {
		return err
	}
	return msg.Params.Validate()
}

// ParseAddress decodes a bech32 account address, naming the field on failure.
func ParseAddress(field, bech string) (sdk.AccAddress, error) {
	addr, err := sdk.AccAddressFromBech32(bech)
	if err != nil {
		return nil, ErrInvalidAddress.Wrapf("%s: %s", field, err)
	}
	if len(addr) > MaxIdentityLength {
		return nil, ErrInvalidAddress.Wrapf("%s: %d bytes exceeds %d", field, len(addr), MaxIdentityLength)
	}
	return addr, nil
}

// ParseResultHash copies a 32-byte result hash.
func ParseResultHash(bz []byte) ([ResultHashLength]byte, error) {
	var h [ResultHashLength]byte
	if len(bz) != ResultHashLength {
		return h, ErrInvalidResultHash.Wrapf("expected %d bytes, got %d", ResultHashLength, len(bz))
	}
	copy(h[:], bz)
	return h, nil
}
