package clean

import "github.com/reclaimtool/reclaim/internal/cmdexec"

// containerEngines are probed in order; the first one on PATH is pruned.
var containerEngines = []string{"docker", "podman"}

// actionContainerPrune reclaims unused container images, networks, and
// volumes. No engine on PATH means a silent-ish skip (one log line).
func actionContainerPrune(e *Env) error {
	var engine string
	for _, c := range containerEngines {
		if cmdexec.Exists(c) {
			engine = c
			break
		}
	}
	if engine == "" {
		e.Log.Logf("no container engine found, skipping prune")
		return nil
	}

	return e.Command(engine+" system prune -af --volumes", false,
		engine, "system", "prune", "-af", "--volumes")
}
