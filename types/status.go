package types

import (
	"fmt"
)

// ProposalStatus codes as published by the NNS governance canister.
const (
	StatusUnspecified int32 = 0
	StatusOpen        int32 = 1
	StatusRejected    int32 = 2
	StatusAdopted     int32 = 3
	StatusExecuted    int32 = 4
	StatusFailed      int32 = 5
)

var statusNames = map[int32]string{
	StatusUnspecified: "Unspecified",
	StatusOpen:        "Open",
	StatusRejected:    "Rejected",
	StatusAdopted:     "Adopted",
	StatusExecuted:    "Executed",
	StatusFailed:      "Failed",
}

var statusCodes = reverseRegistry(statusNames)

func StatusName(code int32) string {
	if name, ok := statusNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", code)
}

func StatusCode(name string) (int32, bool) {
	code, ok := statusCodes[name]
	return code, ok
}

func StatusCodes() []int32 {
	return sortedCodes(statusNames)
}
