// Package catalog holds the fixed service packages and add-ons offered to
// qualified leads.
package catalog

const (
	ProjectTypeWeb       = "Web Application"
	ProjectTypeMobile    = "Mobile Application"
	ProjectTypeEcommerce = "E-commerce Platform"
	ProjectTypeSupport   = "Existing Project Support"
	ProjectTypeCustom    = "Custom Software"
)

type Package struct {
	ID          string
	Name        string
	Description string
	Price       float64
	Duration    string
	Features    []string
}

type AddOn struct {
	ID          string
	Name        string
	Description string
	Price       float64
}

// packages are listed per project type in ascending price order.
var packages = map[string][]Package{
	ProjectTypeWeb: {
		{
			ID:          "pkg_web_starter",
			Name:        "Starter Web App",
			Description: "Focused web application covering one core workflow",
			Price:       20000,
			Duration:    "6-8 weeks",
			Features:    []string{"Responsive UI", "User authentication", "Admin panel"},
		},
		{
			ID:          "pkg_web_pro",
			Name:        "Professional Web Application",
			Description: "Multi-role web platform with integrations and reporting",
			Price:       45000,
			Duration:    "3-4 months",
			Features:    []string{"Responsive UI", "Role-based access", "Third-party integrations", "Reporting dashboard"},
		},
	},
	ProjectTypeMobile: {
		{
			ID:          "pkg_mobile_mvp",
			Name:        "Mobile MVP",
			Description: "Single-platform app validating the core user journey",
			Price:       35000,
			Duration:    "2-3 months",
			Features:    []string{"Native UI", "Push notifications", "Analytics events"},
		},
		{
			ID:          "pkg_mobile_pro",
			Name:        "Cross-platform Mobile App",
			Description: "iOS and Android apps sharing one codebase and backend",
			Price:       60000,
			Duration:    "4-5 months",
			Features:    []string{"iOS and Android", "Offline support", "Push notifications", "Backend API"},
		},
	},
	ProjectTypeEcommerce: {
		{
			ID:          "pkg_ecom_starter",
			Name:        "Starter Storefront",
			Description: "Single-vendor storefront with hosted checkout",
			Price:       30000,
			Duration:    "2-3 months",
			Features:    []string{"Product catalog", "Hosted checkout", "Order notifications"},
		},
		{
			ID:          "pkg_ecom_pro",
			Name:        "Professional E-commerce",
			Description: "Full-featured e-commerce platform with payment integration",
			Price:       75000,
			Duration:    "4-5 months",
			Features:    []string{"Product catalog", "Payment processing", "User management", "Admin dashboard"},
		},
	},
	ProjectTypeSupport: {
		{
			ID:          "pkg_support_audit",
			Name:        "Codebase Audit & Stabilisation",
			Description: "Assessment of the existing system followed by critical fixes",
			Price:       15000,
			Duration:    "4-6 weeks",
			Features:    []string{"Architecture review", "Bug triage", "Performance fixes"},
		},
		{
			ID:          "pkg_support_retainer",
			Name:        "Feature Retainer",
			Description: "Dedicated squad extending the existing product",
			Price:       40000,
			Duration:    "3 months",
			Features:    []string{"Dedicated squad", "Sprint planning", "Feature delivery", "Monthly reporting"},
		},
	},
	ProjectTypeCustom: {
		{
			ID:          "pkg_custom_discovery",
			Name:        "Discovery & Prototype",
			Description: "Requirements discovery and a clickable prototype",
			Price:       25000,
			Duration:    "6 weeks",
			Features:    []string{"Stakeholder workshops", "Technical roadmap", "Clickable prototype"},
		},
		{
			ID:          "pkg_custom_build",
			Name:        "Custom Build",
			Description: "End-to-end delivery of a bespoke software product",
			Price:       90000,
			Duration:    "5-6 months",
			Features:    []string{"Discovery", "Design system", "Full-stack delivery", "Launch support"},
		},
	},
}

var addOns = []AddOn{
	{ID: "addon_mobile", Name: "Mobile App Development", Description: "Native iOS and Android apps", Price: 25000},
	{ID: "addon_analytics", Name: "Advanced Analytics", Description: "Comprehensive reporting and analytics dashboard", Price: 10000},
	{ID: "addon_support", Name: "Extended Support", Description: "Twelve months of post-launch support", Price: 8000},
}

// PackagesFor returns the packages offered for a project type, cheapest
// first. Unknown project types get the custom software packages.
func PackagesFor(projectType string) []Package {
	list, ok := packages[projectType]
	if !ok {
		list = packages[ProjectTypeCustom]
	}
	out := make([]Package, len(list))
	for i, p := range list {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

func AddOns() []AddOn {
	return append([]AddOn(nil), addOns...)
}
