package types

import (
	"fmt"
	"sort"
)

// Topic codes as published by the NNS governance canister. Code 11 was
// retired upstream and is intentionally absent.
const (
	TopicUnspecified                    int32 = 0
	TopicNeuronManagement               int32 = 1
	TopicExchangeRate                   int32 = 2
	TopicNetworkEconomics               int32 = 3
	TopicGovernance                     int32 = 4
	TopicNodeAdmin                      int32 = 5
	TopicParticipantManagement          int32 = 6
	TopicSubnetManagement               int32 = 7
	TopicNetworkCanisterManagement      int32 = 8
	TopicKyc                            int32 = 9
	TopicNodeProviderRewards            int32 = 10
	TopicIcOsVersionDeployment          int32 = 12
	TopicIcOsVersionElection            int32 = 13
	TopicSnsAndCommunityFund            int32 = 14
	TopicApiBoundaryNodeManagement      int32 = 15
	TopicSubnetRental                   int32 = 16
	TopicProtocolCanisterManagement     int32 = 17
	TopicServiceNervousSystemManagement int32 = 18
)

var topicNames = map[int32]string{
	TopicUnspecified:                    "Unspecified",
	TopicNeuronManagement:               "NeuronManagement",
	TopicExchangeRate:                   "ExchangeRate",
	TopicNetworkEconomics:               "NetworkEconomics",
	TopicGovernance:                     "Governance",
	TopicNodeAdmin:                      "NodeAdmin",
	TopicParticipantManagement:          "ParticipantManagement",
	TopicSubnetManagement:               "SubnetManagement",
	TopicNetworkCanisterManagement:      "NetworkCanisterManagement",
	TopicKyc:                            "Kyc",
	TopicNodeProviderRewards:            "NodeProviderRewards",
	TopicIcOsVersionDeployment:          "IcOsVersionDeployment",
	TopicIcOsVersionElection:            "IcOsVersionElection",
	TopicSnsAndCommunityFund:            "SnsAndCommunityFund",
	TopicApiBoundaryNodeManagement:      "ApiBoundaryNodeManagement",
	TopicSubnetRental:                   "SubnetRental",
	TopicProtocolCanisterManagement:     "ProtocolCanisterManagement",
	TopicServiceNervousSystemManagement: "ServiceNervousSystemManagement",
}

var topicCodes = reverseRegistry(topicNames)

// TopicName resolves a topic code to its canonical name. Unknown codes
// render as Unknown(<code>) and do not round-trip.
func TopicName(code int32) string {
	if name, ok := topicNames[code]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(%d)", code)
}

// TopicCode resolves a canonical topic name back to its code.
func TopicCode(name string) (int32, bool) {
	code, ok := topicCodes[name]
	return code, ok
}

// TopicCodes returns every registered topic code in ascending order.
func TopicCodes() []int32 {
	return sortedCodes(topicNames)
}

func reverseRegistry(names map[int32]string) map[string]int32 {
	codes := make(map[string]int32, len(names))
	for code, name := range names {
		codes[name] = code
	}
	return codes
}

func sortedCodes(names map[int32]string) []int32 {
	codes := make([]int32, 0, len(names))
	for code := range names {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
