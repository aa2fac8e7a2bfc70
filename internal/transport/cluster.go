package transport

import (
	"sync/atomic"

	"github.com/zhangyunhao116/fastrand"
)

// Cluster is the ordered list of gateway host:port candidates one client fails
// over across. The list is append-only during configuration and must not be
// mutated once a client starts issuing requests; reads after that point are
// lock-free.
type Cluster struct {
	nodes    []string
	lastHost atomic.Value // string
}

// NewCluster creates a cluster definition from the given host:port candidates.
func NewCluster(hosts ...string) *Cluster {
	c := &Cluster{}
	for _, h := range hosts {
		c.Add(h)
	}
	return c
}

// Add appends a host:port candidate. Configuration-time only.
func (c *Cluster) Add(host string) *Cluster {
	c.nodes = append(c.nodes, host)
	return c
}

// Nodes returns the configured candidates. Callers must not modify the slice.
func (c *Cluster) Nodes() []string {
	return c.nodes
}

// randomStart picks a uniformly random index to begin failover iteration at,
// spreading load across gateway instances.
func (c *Cluster) randomStart() int {
	if len(c.nodes) <= 1 {
		return 0
	}
	return fastrand.Intn(len(c.nodes))
}

// markLastHost records the host most recently attempted. The value is swapped
// atomically so concurrent operations never observe a torn write.
func (c *Cluster) markLastHost(host string) {
	c.lastHost.Store(host)
}

// LastHost returns the host most recently attempted by any operation, or ""
// before the first request.
func (c *Cluster) LastHost() string {
	if v := c.lastHost.Load(); v != nil {
		return v.(string)
	}
	return ""
}
