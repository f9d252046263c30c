package services

import (
	"time"

	"purchase-report/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	defaultPurchaserPoolSize = 8
	businessHoursStart       = 8
	businessHoursEnd         = 22
)

var (
	recordSources = []string{"online", "retail", "partner", "wholesale"}

	// price range per card type, in currency units
	recordTypePrices = map[string][2]float64{
		"bronze":   {5.00, 20.00},
		"silver":   {20.00, 50.00},
		"gold":     {50.00, 150.00},
		"platinum": {150.00, 500.00},
	}
	recordTypes = []string{"bronze", "silver", "gold", "platinum"}
)

type purchaseRecordGenerator struct {
	faker      *gofakeit.Faker
	purchasers []string
}

// NewPurchaseRecordGenerator creates a generator. A zero seed draws a random one.
func NewPurchaseRecordGenerator(seed uint64) PurchaseRecordGeneratorInterface {
	faker := gofakeit.New(seed)

	purchasers := make([]string, 0, defaultPurchaserPoolSize)
	for len(purchasers) < defaultPurchaserPoolSize {
		purchasers = append(purchasers, faker.FirstName())
	}

	return &purchaseRecordGenerator{
		faker:      faker,
		purchasers: purchasers,
	}
}

// GenerateDay returns count records purchased during business hours of date's calendar day in loc
func (g *purchaseRecordGenerator) GenerateDay(date time.Time, loc *time.Location, count int) []models.PurchaseRecord {
	if count <= 0 {
		return nil
	}

	day := models.NewDayRange(date, loc)
	records := make([]models.PurchaseRecord, 0, count)

	for i := 0; i < count; i++ {
		recordType := g.faker.RandomString(recordTypes)
		records = append(records, models.PurchaseRecord{
			PurchaserName: g.faker.RandomString(g.purchasers),
			Source:        g.faker.RandomString(recordSources),
			Type:          recordType,
			TotalPrice:    g.generatePrice(recordType),
			PurchaseTime:  g.generateTimestamp(day),
		})
	}

	return records
}

func (g *purchaseRecordGenerator) generatePrice(recordType string) decimal.Decimal {
	r := recordTypePrices[recordType]
	return decimal.NewFromFloat(g.faker.Price(r[0], r[1])).Round(2)
}

func (g *purchaseRecordGenerator) generateTimestamp(day models.DayRange) time.Time {
	hour := g.faker.Number(businessHoursStart, businessHoursEnd-1)
	minute := g.faker.Number(0, 59)
	second := g.faker.Number(0, 59)

	return day.Start.Add(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second).UTC()
}
