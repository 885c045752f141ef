package statistics

type Stats struct {
	total          int
	active         int
	maintenance    int
	broken         int
	warrantyAlerts int
}

func (s Stats) Total() int {
	return s.total
}

func (s Stats) Active() int {
	return s.active
}

func (s Stats) Maintenance() int {
	return s.maintenance
}

func (s Stats) Broken() int {
	return s.broken
}

func (s Stats) WarrantyAlerts() int {
	return s.warrantyAlerts
}

// Bucket is one recognized vocabulary value and the number of assets carrying it.
type Bucket struct {
	Key   string
	Count int
}

// ValueBucket is one recognized category and the summed price of its assets.
type ValueBucket struct {
	Key   string
	Value float64
}

// Charts holds fixed-bucket distributions in vocabulary order.
type Charts struct {
	category []Bucket
	status   []Bucket
	location []Bucket
	value    []ValueBucket
}

func (c Charts) Category() []Bucket {
	return c.category
}

func (c Charts) Status() []Bucket {
	return c.status
}

func (c Charts) Location() []Bucket {
	return c.location
}

func (c Charts) Value() []ValueBucket {
	return c.value
}
