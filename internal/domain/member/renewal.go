package member

// Package describes one renewal offer: a base price and an early-bird
// discount with a deadline.
type Package struct {
	Name              string
	Price             float64
	EarlyBirdPrice    float64
	EarlyBirdDeadline string
	Description       string
}

// EffectivePrice is the price used when a payment does not name an
// explicit amount: the discounted early-bird price when one exists.
func (p Package) EffectivePrice() float64 {
	if p.EarlyBirdPrice > 0 {
		return p.EarlyBirdPrice
	}
	return p.Price
}

// RenewalPackage derives the renewal offer for a member from their
// membership type and graduation year. Returns false when no standard
// package applies and the member should contact support.
func (m *Member) RenewalPackage() (Package, bool) {
	switch {
	case m.EligibleForTransition():
		return Package{
			Name:              "Pharmacist Transition Package",
			Price:             100,
			EarlyBirdPrice:    90,
			EarlyBirdDeadline: "June 15, 2025",
			Description:       "Perfect for recent graduates transitioning to professional practice",
		}, true
	case m.MembershipType == TypePharmacistRegular:
		return Package{
			Name:              "Regular Renewal",
			Price:             200,
			EarlyBirdPrice:    180,
			EarlyBirdDeadline: "June 20, 2025",
			Description:       "Annual membership renewal for practicing pharmacists",
		}, true
	case m.MembershipType == TypeStudent:
		return Package{
			Name:              "Student Renewal",
			Price:             50,
			EarlyBirdPrice:    45,
			EarlyBirdDeadline: "June 30, 2025",
			Description:       "Discounted rate for current students",
		}, true
	}
	return Package{}, false
}
