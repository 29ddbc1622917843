package location

import "time"

type GovernmentType string

const (
	GovernmentDemocracy     GovernmentType = "Democracy"
	GovernmentAuthoritarian GovernmentType = "Authoritarian"
)

// Level is the shared Low/Medium/High scale used by several factor fields.
type Level string

const (
	LevelLow    Level = "Low"
	LevelMedium Level = "Medium"
	LevelHigh   Level = "High"
)

type EventFrequency string

const (
	EventRare       EventFrequency = "Rare"
	EventOccasional EventFrequency = "Occasional"
	EventFrequent   EventFrequency = "Frequent"
)

type InfrastructureLevel string

const (
	InfrastructurePoor     InfrastructureLevel = "Poor"
	InfrastructureModerate InfrastructureLevel = "Moderate"
	InfrastructureAdvanced InfrastructureLevel = "Advanced"
)

type EconomicFactors struct {
	BaseCurrency      string             `json:"base_currency"`
	EconomicStability Level              `json:"economic_stability"`
	MarketDemand      map[string]float64 `json:"market_demand"`
	TaxRate           float64            `json:"tax_rate"`
}

type LegalEnvironment struct {
	BusinessRegulations []string `json:"business_regulations"`
	CorruptionLevel     Level    `json:"corruption_level"`
	BlackMarketPresence bool     `json:"black_market_presence"`
}

type CulturalFactors struct {
	WorkforceSkillLevel Level              `json:"workforce_skill_level"`
	CulturalPreferences map[string]float64 `json:"cultural_preferences"`
	SocialUnrest        Level              `json:"social_unrest"`
}

type GeopoliticalFactors struct {
	TradeRelationships       []string       `json:"trade_relationships"`
	PoliticalEventsFrequency EventFrequency `json:"political_events_frequency"`
	RegionalAlliances        []string       `json:"regional_alliances"`
}

type NaturalResources struct {
	Resources         []string           `json:"resources"`
	ResourceAbundance map[string]float64 `json:"resource_abundance"`
}

type MarketSize struct {
	Population      int64              `json:"population"`
	ConsumerWealth  Level              `json:"consumer_wealth"`
	AgeDemographics map[string]float64 `json:"age_demographics"`
}

type TechnologicalDevelopment struct {
	InfrastructureLevel   InfrastructureLevel `json:"infrastructure_level"`
	InternetAccessibility Level               `json:"internet_accessibility"`
}

type Security struct {
	CrimeRate     Level   `json:"crime_rate"`
	SecurityCosts float64 `json:"security_costs"`
}

// Location is a descriptive record with no relational invariants beyond its
// enum-constrained sub-fields. Factor groups are stored as JSON columns.
type Location struct {
	ID               string                   `gorm:"primaryKey;size:24;column:id" json:"id"`
	Name             string                   `gorm:"size:160" json:"name"`
	GovernmentType   GovernmentType           `gorm:"size:24" json:"government_type"`
	Economic         EconomicFactors          `gorm:"serializer:json" json:"economic_factors"`
	Legal            LegalEnvironment         `gorm:"serializer:json" json:"legal_environment"`
	Cultural         CulturalFactors          `gorm:"serializer:json" json:"cultural_factors"`
	Geopolitical     GeopoliticalFactors      `gorm:"serializer:json" json:"geopolitical_factors"`
	NaturalResources NaturalResources         `gorm:"serializer:json" json:"natural_resources"`
	MarketSize       MarketSize               `gorm:"serializer:json" json:"market_size"`
	Technological    TechnologicalDevelopment `gorm:"serializer:json" json:"technological_development"`
	Security         Security                 `gorm:"serializer:json" json:"security"`
	IsDeleted        bool                     `gorm:"index" json:"-"`
	CreatedAt        time.Time                `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Location) TableName() string { return "locations" }

func (l Location) Deleted() bool { return l.IsDeleted }
