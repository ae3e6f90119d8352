package model

const (
	// ChainBSC defines the only supported chain.
	ChainBSC = "bsc"
)

// FormAnalyze is an analyze request form.
type FormAnalyze struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
}
