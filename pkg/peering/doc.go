// Package peering implements peer monitoring between independent operator
// processes watching the same cluster: each operator announces its liveness
// into the status of a shared ClusterKopfPeering/KopfPeering object, observes
// the other entries, and freezes its own reactive work while a higher- or
// equal-priority peer is alive.
//
// There are no per-object locks between operators. The protocol tolerates a
// brief multi-writer overlap and relies on every operator promptly freezing
// on conflict, not on hard mutual exclusion.
package peering
