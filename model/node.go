package model

import (
	"errors"
	"strconv"
	"strings"
)

// Node id prefixes. The "C_" prefix is load-bearing: pricer branches on node
// kind by prefix alone.
const (
	WarehousePrefix = "W_"
	CustomerPrefix  = "C_"
)

// ErrMalformedNodeID indicates a node id does not have a recognized
// W_<id>/C_<id> shape.
var ErrMalformedNodeID = errors.New("model: malformed node id")

// Kind distinguishes warehouses from customers.
type Kind int

const (
	// KindWarehouse tags a depot node.
	KindWarehouse Kind = iota
	// KindCustomer tags a delivery node.
	KindCustomer
)

func (k Kind) String() string {
	if k == KindWarehouse {
		return "warehouse"
	}
	return "customer"
}

// WarehouseNodeID formats a warehouse's stable external node id.
func WarehouseNodeID(id int64) string {
	return WarehousePrefix + strconv.FormatInt(id, 10)
}

// CustomerNodeID formats a customer's stable external node id.
func CustomerNodeID(id int64) string {
	return CustomerPrefix + strconv.FormatInt(id, 10)
}

// IsCustomerNode reports whether node is a customer id by prefix alone.
func IsCustomerNode(node string) bool {
	return strings.HasPrefix(node, CustomerPrefix)
}

// IsWarehouseNode reports whether node is a warehouse id by prefix alone.
func IsWarehouseNode(node string) bool {
	return strings.HasPrefix(node, WarehousePrefix)
}

// ParseNodeID splits a node id into its Kind and its numeric suffix. The
// numeric suffix is what dual-value lookup keys on.
func ParseNodeID(node string) (Kind, int64, error) {
	var kind Kind
	var suffix string

	switch {
	case strings.HasPrefix(node, CustomerPrefix):
		kind = KindCustomer
		suffix = strings.TrimPrefix(node, CustomerPrefix)
	case strings.HasPrefix(node, WarehousePrefix):
		kind = KindWarehouse
		suffix = strings.TrimPrefix(node, WarehousePrefix)
	default:
		return 0, 0, ErrMalformedNodeID
	}

	id, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil || suffix == "" {
		return 0, 0, ErrMalformedNodeID
	}

	return kind, id, nil
}

// NodeIDSuffix returns the textual numeric suffix of node (e.g. "20" for
// "C_20"), without validating that node is well-formed. Used for dual-value
// lookup where a missing/malformed suffix simply yields no match (treated
// as dual 0).
func NodeIDSuffix(node string) string {
	if i := strings.IndexByte(node, '_'); i >= 0 {
		return node[i+1:]
	}
	return node
}
