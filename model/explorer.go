package model

// ContractABI is a verified contract ABI fetched from the explorer.
type ContractABI struct {
	// JSON is the raw ABI document as published by the explorer.
	JSON string
	// Functions lists the names of all entries with type "function".
	Functions []string
}

// ExplorerStatus is a diagnostic summary of the explorer integration.
type ExplorerStatus struct {
	KeyPresent       bool   `json:"key_present"`
	ABIStatus        string `json:"abi_status"`
	ABIFunctionCount int    `json:"abi_function_count"`
}
