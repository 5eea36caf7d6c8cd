package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a spending category with the keywords that file
// expense descriptions under it.
type Category struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"` // Name of the category, lowercase and unique
	Keywords string // Comma separated list of match keywords
	Note     string
}

// KeywordList returns the keywords as a clean slice.
func (c Category) KeywordList() []string {
	var keywords []string
	for _, keyword := range strings.Split(c.Keywords, ",") {
		keyword = strings.ToLower(strings.TrimSpace(keyword))
		if keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}

// BeforeSave normalizes the category and enforces that no keyword is
// claimed by more than one category, since classification would
// otherwise depend on iteration order.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	c.Name = strings.ToLower(strings.TrimSpace(c.Name))
	c.Note = strings.TrimSpace(c.Note)

	keywords := c.KeywordList()
	seen := make(map[string]bool, len(keywords))
	deduplicated := keywords[:0]
	for _, keyword := range keywords {
		if !seen[keyword] {
			seen[keyword] = true
			deduplicated = append(deduplicated, keyword)
		}
	}
	c.Keywords = strings.Join(deduplicated, ",")

	// On updates the hook runs on the update value, which does not
	// carry the ID. Take it from the model being updated so that a
	// category does not conflict with its own stored keywords.
	id := c.ID
	if id == uuid.Nil {
		if model, ok := tx.Statement.Model.(*Category); ok && model != nil {
			id = model.ID
		}
	}

	var others []Category
	err := tx.Where("id != ?", id).Find(&others).Error
	if err != nil {
		return err
	}

	for _, other := range others {
		for _, keyword := range other.KeywordList() {
			if seen[keyword] {
				return fmt.Errorf("%w: %q belongs to %q", ErrKeywordNotUnique, keyword, other.Name)
			}
		}
	}

	return nil
}

// defaultCategories seeds an empty database so that classification
// works out of the box. Users are expected to grow the keyword lists
// over time.
var defaultCategories = []Category{
	{Name: "groceries", Keywords: "fairprice,ntuc,sheng,siong,giant,cold,storage,marketplace,redmart"},
	{Name: "dining", Keywords: "restaurant,cafe,coffee,kopitiam,mcdonald,kfc,foodpanda,deliveroo,toast,bakery"},
	{Name: "transport", Keywords: "grab*,gojek,mrt,bus,comfort,taxi,transit,ezlink"},
	{Name: "utilities", Keywords: "singtel,starhub,m1,circles,sp,power,pub,broadband"},
	{Name: "shopping", Keywords: "shopee,lazada,amazon,uniqlo,ikea,watsons,guardian"},
	{Name: "entertainment", Keywords: "netflix,spotify,cinema,cathay,shaw,steam"},
	{Name: "health", Keywords: "clinic,pharmacy,hospital,dental,polyclinic"},
	{Name: "insurance", Keywords: "insurance,prudential,aia,msig"},
	{Name: "travel", Keywords: "airline,scoot,agoda,booking,airbnb,hotel"},
	{Name: "others", Keywords: ""},
}

// seedCategories inserts the default category set if no categories
// exist yet.
func seedCategories(db *gorm.DB) error {
	var count int64
	err := db.Model(&Category{}).Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	for _, category := range defaultCategories {
		category := category
		err := db.Create(&category).Error
		if err != nil {
			return fmt.Errorf("error seeding category %q: %w", category.Name, err)
		}
	}

	return nil
}

// Categories returns all categories, ordered by name.
func Categories(db *gorm.DB) ([]Category, error) {
	var categories []Category
	err := db.Order("name ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	return categories, nil
}
