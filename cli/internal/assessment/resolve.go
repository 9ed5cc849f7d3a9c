package assessment

import "context"

// resolveVersion returns the explicit version when the user supplied one,
// otherwise looks up the brain's latest version. The note tags the lookup
// with a description of the calling operation for the server's audit log.
// Lookup failure is fatal to the calling command; there is no retry here.
func (c *Coordinator) resolveVersion(ctx context.Context, brainName string, version int, note string) (int, error) {
	if version > 0 {
		return version, nil
	}

	latest, err := c.brains.GetLatestVersion(ctx, brainName, note, c.opts.Workspace)
	if err != nil {
		return 0, err
	}
	return latest.Version, nil
}
