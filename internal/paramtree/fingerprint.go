package paramtree

import "github.com/minio/highwayhash"

var fingerprintKey = []byte("paramgrid-tree-fingerprint-key!!")

// Fingerprint hashes the ordered key set. Two trees built from an unmodified
// graph have the same fingerprint.
func (t *Tree) Fingerprint() uint64 {
	h, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		// Only possible with a key that is not 32 bytes long.
		panic(err)
	}
	for _, k := range t.keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return h.Sum64()
}
