package entities

type Package struct {
	PackageID     string
	Name          string
	EmployeeLimit int
	Price         float64
	Features      []string
}

// DefaultPackages is the slot catalog seeded into empty stores.
func DefaultPackages() []Package {
	return []Package{
		{
			PackageID:     "basic",
			Name:          "Basic",
			EmployeeLimit: 5,
			Price:         5,
			Features:      []string{"Asset Tracking", "Employee Management", "Basic Support"},
		},
		{
			PackageID:     "standard",
			Name:          "Standard",
			EmployeeLimit: 10,
			Price:         8,
			Features:      []string{"All Basic features", "Advanced Analytics", "Priority Support"},
		},
		{
			PackageID:     "premium",
			Name:          "Premium",
			EmployeeLimit: 20,
			Price:         15,
			Features:      []string{"All Standard features", "Custom Branding", "24/7 Support"},
		},
	}
}
