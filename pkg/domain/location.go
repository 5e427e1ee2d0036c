package domain

// Region is the root of the administrative geography.
type Region struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// District belongs to exactly one Region. Region is only populated when the
// reader explicitly loads it.
type District struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	RegionID int64   `json:"region_id"`
	Region   *Region `json:"region,omitempty"`
}

// Council is the leaf of the hierarchy that plots are attached to.
type Council struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	DistrictID int64     `json:"district_id"`
	District   *District `json:"district,omitempty"`
}
