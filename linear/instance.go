package linear

// Instance pairs a gold label string with a raw feature vector.
type Instance struct {
	Label  string
	Vector *StringFeatureVector
}

// IntInstance pairs a dense label index with a resolved feature vector.
type IntInstance struct {
	Label  int
	Vector SparseVector
}

// Collector accumulates raw instances and counts label and feature
// frequencies prior to the vocabulary freeze.
type Collector struct {
	labelCounts   map[string]int
	featureCounts map[string]int
	labelOrder    []string
	featureOrder  []string
	instances     []Instance
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		labelCounts:   make(map[string]int),
		featureCounts: make(map[string]int),
	}
}

// Add records an instance, counting its label and features.
func (c *Collector) Add(inst Instance) {
	if _, ok := c.labelCounts[inst.Label]; !ok {
		c.labelOrder = append(c.labelOrder, inst.Label)
	}
	c.labelCounts[inst.Label]++
	for _, f := range inst.Vector.Features {
		if _, ok := c.featureCounts[f]; !ok {
			c.featureOrder = append(c.featureOrder, f)
		}
		c.featureCounts[f]++
	}
	c.instances = append(c.instances, inst)
}

// Instances returns all collected instances in insertion order.
func (c *Collector) Instances() []Instance {
	return c.instances
}

// Size returns the number of collected instances.
func (c *Collector) Size() int {
	return len(c.instances)
}

// Labels returns labels seen at least cutoff times, in first-seen order.
func (c *Collector) Labels(cutoff int) []string {
	var out []string
	for _, l := range c.labelOrder {
		if c.labelCounts[l] >= cutoff {
			out = append(out, l)
		}
	}
	return out
}

// Features returns features seen at least cutoff times, in first-seen order.
func (c *Collector) Features(cutoff int) []string {
	var out []string
	for _, f := range c.featureOrder {
		if c.featureCounts[f] >= cutoff {
			out = append(out, f)
		}
	}
	return out
}
