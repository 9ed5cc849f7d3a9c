package assessment

import (
	"context"

	bonsai "github.com/faisalkhan91/bonsai-cli/sdk"
	"github.com/faisalkhan91/bonsai-cli/sdk/models"
)

// provisionSimulators fetches the managed simulator package descriptor and
// creates a simulator collection for the assessment, sized from the
// descriptor. The start instance count is overridden by instanceCount when
// positive. The remote service is the final arbiter of the instance bounds;
// nothing is clamped here.
func (c *Coordinator) provisionSimulators(ctx context.Context, packageName string, instanceCount int, brainName string, brainVersion int, conceptName string) error {
	pkg, err := c.simulators.GetPackage(ctx, packageName, c.opts.Workspace)
	if err != nil {
		if isAuthentication(err) {
			return err
		}
		if bonsai.IsStatusNotFound(err) {
			return &bonsai.NotFoundError{Kind: "Simulator package", Name: packageName, Err: err}
		}
		return err
	}

	if instanceCount <= 0 {
		instanceCount = pkg.StartInstanceCount
	}

	_, err = c.simulators.CreateCollection(ctx, &models.SimCollectionRequest{
		PackageName:        packageName,
		BrainName:          brainName,
		BrainVersion:       brainVersion,
		ConceptName:        conceptName,
		PurposeAction:      "Assess",
		Description:        "desc",
		CoresPerInstance:   pkg.CoresPerInstance,
		MemInGbPerInstance: pkg.MemInGbPerInstance,
		StartInstanceCount: instanceCount,
		MinInstanceCount:   pkg.MinInstanceCount,
		MaxInstanceCount:   pkg.MaxInstanceCount,
		AutoScale:          pkg.AutoScale,
		AutoTerminate:      pkg.AutoTerminate,
	}, c.opts.Workspace)
	return err
}
