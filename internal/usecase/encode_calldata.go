package usecase

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// EncodeCalldataResult contains encoded call data
type EncodeCalldataResult struct {
	Method   string        `json:"method"`
	CallData hexutil.Bytes `json:"callData"`
	Call     string        `json:"call"`
}

// EncodeCalldata builds call data for proposals targeting the token
type EncodeCalldata struct {
	codec CalldataCodec
}

// NewEncodeCalldata creates a new EncodeCalldata use case
func NewEncodeCalldata(codec CalldataCodec) *EncodeCalldata {
	return &EncodeCalldata{codec: codec}
}

// Run encodes method with args
func (uc *EncodeCalldata) Run(method string, args []string) (*EncodeCalldataResult, error) {
	data, err := uc.codec.EncodeCall(method, args)
	if err != nil {
		return nil, err
	}
	desc, _ := uc.codec.DescribeCall(data)
	return &EncodeCalldataResult{Method: method, CallData: data, Call: desc}, nil
}

// Methods lists the encodable method signatures
func (uc *EncodeCalldata) Methods() []string {
	return uc.codec.Methods()
}
