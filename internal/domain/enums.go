package domain

import "fmt"

// Regime selects the statutory computation mode.
type Regime string

const (
	RegimeOld Regime = "OLD"
	RegimeNew Regime = "NEW"
)

// Valid reports whether the regime is a recognized value.
func (r Regime) Valid() bool { return r == RegimeOld || r == RegimeNew }

// CityCategory drives the HRA exemption rate.
type CityCategory string

const (
	CityMetro    CityCategory = "METRO"
	CityNonMetro CityCategory = "NON_METRO"
)

func (c CityCategory) Valid() bool { return c == CityMetro || c == CityNonMetro }

// Occupancy is the occupancy status of a house property. Exactly one
// applies per property.
type Occupancy string

const (
	OccupancySelfOccupied Occupancy = "SELF_OCCUPIED"
	OccupancyLetOut       Occupancy = "LET_OUT"
)

func (o Occupancy) Valid() bool { return o == OccupancySelfOccupied || o == OccupancyLetOut }

// LeaveEncashmentOccasion distinguishes the statutory treatment of leave
// encashment receipts.
type LeaveEncashmentOccasion string

const (
	EncashmentDuringService LeaveEncashmentOccasion = "DURING_SERVICE"
	EncashmentAtRetirement  LeaveEncashmentOccasion = "RETIREMENT"
	EncashmentOnDeath       LeaveEncashmentOccasion = "DEATH"
)

func (o LeaveEncashmentOccasion) Valid() bool {
	return o == EncashmentDuringService || o == EncashmentAtRetirement || o == EncashmentOnDeath
}

// DonationTier is one of the four section 80G computation tiers.
type DonationTier string

const (
	TierFullNoLimit   DonationTier = "FULL_NO_LIMIT"
	TierHalfNoLimit   DonationTier = "HALF_NO_LIMIT"
	TierFullWithLimit DonationTier = "FULL_WITH_LIMIT"
	TierHalfWithLimit DonationTier = "HALF_WITH_LIMIT"
)

func (t DonationTier) Valid() bool {
	switch t {
	case TierFullNoLimit, TierHalfNoLimit, TierFullWithLimit, TierHalfWithLimit:
		return true
	}
	return false
}

// DonationHead identifies the receiving fund/institution of an 80G
// donation. Each head belongs to exactly one tier.
type DonationHead string

const (
	HeadPMNationalReliefFund     DonationHead = "PM_NATIONAL_RELIEF_FUND"
	HeadPMCaresFund              DonationHead = "PM_CARES_FUND"
	HeadNationalDefenceFund      DonationHead = "NATIONAL_DEFENCE_FUND"
	HeadCMReliefFund             DonationHead = "CM_RELIEF_FUND"
	HeadJNMemorialFund           DonationHead = "JAWAHARLAL_NEHRU_MEMORIAL_FUND"
	HeadPMDroughtReliefFund      DonationHead = "PM_DROUGHT_RELIEF_FUND"
	HeadIndiraGandhiMemorial     DonationHead = "INDIRA_GANDHI_MEMORIAL_TRUST"
	HeadRajivGandhiFoundation    DonationHead = "RAJIV_GANDHI_FOUNDATION"
	HeadGovtFamilyPlanning       DonationHead = "GOVT_FAMILY_PLANNING"
	HeadIndianOlympicAssoc       DonationHead = "INDIAN_OLYMPIC_ASSOCIATION"
	HeadCharitableInstitution    DonationHead = "CHARITABLE_INSTITUTION"
	HeadNotifiedTempleRenovation DonationHead = "NOTIFIED_TEMPLE_RENOVATION"
)

// donationHeadTiers is the fixed head-to-tier registry. A donation whose
// head is absent, or declared under a different tier, is rejected.
var donationHeadTiers = map[DonationHead]DonationTier{
	HeadPMNationalReliefFund:     TierFullNoLimit,
	HeadPMCaresFund:              TierFullNoLimit,
	HeadNationalDefenceFund:      TierFullNoLimit,
	HeadCMReliefFund:             TierFullNoLimit,
	HeadJNMemorialFund:           TierHalfNoLimit,
	HeadPMDroughtReliefFund:      TierHalfNoLimit,
	HeadIndiraGandhiMemorial:     TierHalfNoLimit,
	HeadRajivGandhiFoundation:    TierHalfNoLimit,
	HeadGovtFamilyPlanning:       TierFullWithLimit,
	HeadIndianOlympicAssoc:       TierFullWithLimit,
	HeadCharitableInstitution:    TierHalfWithLimit,
	HeadNotifiedTempleRenovation: TierHalfWithLimit,
}

// TierForHead resolves the statutory tier of a donation head.
func TierForHead(head DonationHead) (DonationTier, error) {
	tier, ok := donationHeadTiers[head]
	if !ok {
		return "", fmt.Errorf("donation head %q: %w", head, ErrUnknownEnumValue)
	}
	return tier, nil
}

// DisabilityRelation identifies the dependant for an 80DD claim.
type DisabilityRelation string

const (
	RelationSpouse  DisabilityRelation = "SPOUSE"
	RelationChild   DisabilityRelation = "CHILD"
	RelationParent  DisabilityRelation = "PARENT"
	RelationSibling DisabilityRelation = "SIBLING"
)

func (r DisabilityRelation) Valid() bool {
	switch r {
	case RelationSpouse, RelationChild, RelationParent, RelationSibling:
		return true
	}
	return false
}

// Allowance codes recognized by the exemption calculators. Codes outside
// this list are treated as fully taxable salary receipts.
const (
	AllowanceChildrenEducation = "children_education"
	AllowanceHostel            = "hostel"
	AllowanceTransport         = "transport"
	AllowanceHills             = "hills"
	AllowanceBorder            = "border"
	AllowanceUndergroundMines  = "underground_mines"
	AllowanceTransportEmployee = "transport_employee"
	AllowanceEntertainment     = "entertainment"
	AllowanceOutsideIndia      = "outside_india"
	AllowanceJudge             = "judge"
	AllowanceSpecial1014       = "special_10_14"
)

// Capital-gains bucket codes. The bucket decides slab vs special-rate
// treatment and which configured rate applies.
const (
	BucketSTCG111A  = "stcg_111a"
	BucketSTCGDebt  = "stcg_debt_mf"
	BucketSTCGOther = "stcg_other"
	BucketLTCG112A  = "ltcg_112a"
	BucketLTCGDebt  = "ltcg_debt_mf"
	BucketLTCGOther = "ltcg_other"
)
