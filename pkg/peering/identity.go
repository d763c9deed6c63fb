package peering

import (
	"fmt"
	"math/rand/v2"
	"os"
	"os/user"
	"strings"
	"time"
)

// PodIDEnv names the environment variable carrying the pod name for
// in-cluster deployments, typically injected via the downward API:
//
//	env:
//	- name: POD_ID
//	  valueFrom:
//	    fieldRef:
//	      fieldPath: metadata.name
const PodIDEnv = "POD_ID"

const identitySuffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// DetectOwnID detects or generates the identity of this operator process.
//
// In-cluster, the pod name from POD_ID is used verbatim, giving a stable
// per-pod identity. Outside the cluster, the identity is composed from the
// local user and host: with manual set it stays stable across invocations
// (for interactive freeze/resume), otherwise a UTC timestamp and a short
// random suffix make it unique per run, so repeated dev-mode starts from the
// same workstation never collide.
func DetectOwnID(manual bool) Identity {
	if pod := os.Getenv(PodIDEnv); pod != "" {
		return Identity(pod)
	}

	username := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		// Windows-style DOMAIN\user values keep only the user part.
		username = u.Username
		if idx := strings.LastIndex(username, `\`); idx >= 0 {
			username = username[idx+1:]
		}
	} else if env := os.Getenv("USER"); env != "" {
		username = env
	}

	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "localhost"
	}

	if manual {
		return Identity(fmt.Sprintf("%s@%s", username, host))
	}

	now := time.Now().UTC().Format("20060102150405")
	suffix := make([]byte, 3)
	for i := range suffix {
		// Collision avoidance only, no cryptographic significance.
		suffix[i] = identitySuffixAlphabet[rand.IntN(len(identitySuffixAlphabet))]
	}
	return Identity(fmt.Sprintf("%s@%s/%s/%s", username, host, now, suffix))
}
