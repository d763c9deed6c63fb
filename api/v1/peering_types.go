package v1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PeerSpec is one operator's keep-alive entry inside a peering object's
// status. Entries are keyed by the operator's identity; only these three
// fields are ever persisted. Unknown fields written by newer operators are
// ignored on decode for forward compatibility.
type PeerSpec struct {
	// priority decides which operator wins when several are alive; higher wins.
	// +optional
	Priority int64 `json:"priority,omitempty"`

	// lastseen is the ISO-8601 timestamp of the last keep-alive renewal.
	// Timezone offsets are discarded; all comparisons assume naive UTC.
	// +optional
	Lastseen string `json:"lastseen,omitempty"`

	// lifetime is the number of seconds after which an un-renewed entry is
	// considered dead.
	// +optional
	Lifetime int64 `json:"lifetime,omitempty"`
}

// PeeringStatus maps peer identity to its keep-alive entry.
type PeeringStatus map[string]PeerSpec

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=ckopfpeering
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// ClusterKopfPeering is the cluster-wide peering object. Operators running
// without a namespace restriction exchange keep-alive entries through its
// status. There is deliberately no status subresource: the whole object is
// merge-patched so that null entry values delete peers.
type ClusterKopfPeering struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Status PeeringStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ClusterKopfPeeringList contains a list of ClusterKopfPeering.
type ClusterKopfPeeringList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []ClusterKopfPeering `json:"items"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Namespaced
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// KopfPeering is the namespaced peering object, used by operators restricted
// to a single namespace.
type KopfPeering struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Status PeeringStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// KopfPeeringList contains a list of KopfPeering.
type KopfPeeringList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []KopfPeering `json:"items"`
}

func init() {
	SchemeBuilder.Register(
		&ClusterKopfPeering{}, &ClusterKopfPeeringList{},
		&KopfPeering{}, &KopfPeeringList{},
	)
}
