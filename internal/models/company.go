package models

// Company status values shown on the company page.
const (
	CompanyStatusCompliant    = "Compliant"
	CompanyStatusNonCompliant = "Non-Compliant"
)

// Company is a listed issuer keyed by its ticker symbol. The financial profile
// strings are illustrative display values, not computed figures.
type Company struct {
	Symbol           string `gorm:"primaryKey;size:20" json:"symbol"`
	Name             string `gorm:"size:200;not null" json:"name"`
	Sector           string `gorm:"size:100" json:"sector"`
	Status           string `gorm:"size:50;default:'Compliant'" json:"status"`
	Description      string `gorm:"type:text" json:"description"`
	TotalAssets      string `gorm:"size:50" json:"total_assets"`
	TotalLiabilities string `gorm:"size:50" json:"total_liabilities"`
	MarketCap        string `gorm:"size:50" json:"market_cap"`
	LossPerShare     string `gorm:"size:50" json:"loss_per_share"`
	VolumetricGrowth string `gorm:"size:50" json:"volumetric_growth"`

	Stocks    []Stock    `gorm:"foreignKey:Symbol;references:Symbol" json:"-"`
	Favorites []Favorite `gorm:"foreignKey:StockSymbol;references:Symbol" json:"-"`
}
