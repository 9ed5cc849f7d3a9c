package models

// SimPackage is the descriptor of a managed simulator package. Its resource
// profile sizes the simulator collection created for an assessment.
type SimPackage struct {
	Name               string  `json:"name"`
	CoresPerInstance   float64 `json:"coresPerInstance"`
	MemInGbPerInstance float64 `json:"memInGbPerInstance"`
	StartInstanceCount int     `json:"startInstanceCount"`
	MinInstanceCount   int     `json:"minInstanceCount"`
	MaxInstanceCount   int     `json:"maxInstanceCount"`
	AutoScale          bool    `json:"autoScale"`
	AutoTerminate      bool    `json:"autoTerminate"`

	APIStatus
}

// SimCollectionRequest provisions a pool of simulator instances for a brain
// version. All sizing fields are copied from the package descriptor except
// the start instance count, which callers may override.
type SimCollectionRequest struct {
	PackageName        string  `json:"packageName"`
	BrainName          string  `json:"brainName"`
	BrainVersion       int     `json:"brainVersion"`
	ConceptName        string  `json:"conceptName"`
	PurposeAction      string  `json:"purposeAction"`
	Description        string  `json:"description"`
	CoresPerInstance   float64 `json:"coresPerInstance"`
	MemInGbPerInstance float64 `json:"memInGbPerInstance"`
	StartInstanceCount int     `json:"startInstanceCount"`
	MinInstanceCount   int     `json:"minInstanceCount"`
	MaxInstanceCount   int     `json:"maxInstanceCount"`
	AutoScale          bool    `json:"autoScale"`
	AutoTerminate      bool    `json:"autoTerminate"`
}

// SimCollection is the provisioning response.
type SimCollection struct {
	CollectionID string `json:"collectionId"`

	APIStatus
}
