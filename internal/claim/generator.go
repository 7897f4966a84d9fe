package claim

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/zarlcorp/core/pkg/zcrypto"
)

// Generator produces sample claims for demos and tests using crypto/rand.
// Raw values are generated unformatted and pass through the input masks,
// the same path typed input takes.
type Generator struct{}

// New creates a generator.
func New() *Generator {
	return &Generator{}
}

// Generate produces a complete, valid sample claim.
func (g *Generator) Generate() Claim {
	now := time.Now().UTC()
	c := Claim{
		ID:           NewID(),
		FirstName:    pick(firstNames),
		LastName:     pick(lastNames),
		SSN:          g.ssn(),
		SelfEmployed: randIntn(5) == 0,
		EmployerName: pick(employers),
		EmployerFEIN: g.digits(9),
		Phone:        g.phone(),
		Zip:          g.zip(),
		DOB:          g.dob(now).Format("2006-01-02"),
		WeeklyWage:   g.wage(),
		HoursPerWeek: fmt.Sprintf("%d", 20+randIntn(21)),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return c.Normalize()
}

// Period produces a sample leave period for claimID starting within the
// next ninety days.
func (g *Generator) Period(claimID string) LeavePeriod {
	start := time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, randIntn(90))
	end := start.AddDate(0, 0, 7*(1+randIntn(12))-1)
	p := LeavePeriod{
		ID:        NewID(),
		ClaimID:   claimID,
		StartDate: start.Format("2006-01-02"),
		EndDate:   end.Format("2006-01-02"),
		CreatedAt: time.Now().UTC(),
	}
	if randIntn(2) == 0 {
		p.ReducedHours = fmt.Sprintf("%d", 8+randIntn(25))
	}
	return p.Normalize()
}

// NewID returns an 8-character hex record ID.
func NewID() string {
	b, err := zcrypto.RandBytes(4)
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("zcrypto: " + err.Error())
	}
	return hex.EncodeToString(b)
}

// ssn uses the 9xx area, which is never issued.
func (g *Generator) ssn() string {
	return fmt.Sprintf("9%02d%02d%04d", randIntn(100), 1+randIntn(99), 1+randIntn(9999))
}

// phone generates a fictional number in the style "(555) XXX-XXXX".
func (g *Generator) phone() string {
	prefix := 100 + randIntn(900)
	line := randIntn(10000)
	return fmt.Sprintf("(555) %03d-%04d", prefix, line)
}

// zip generates a 5-digit zip, or ZIP+4 a third of the time.
func (g *Generator) zip() string {
	z := fmt.Sprintf("%05d", 1000+randIntn(2000))
	if randIntn(3) == 0 {
		z += fmt.Sprintf("%04d", randIntn(10000))
	}
	return z
}

// dob generates a date of birth between 18 and 70 years before now.
func (g *Generator) dob(now time.Time) time.Time {
	age := 18 + randIntn(70-18+1)
	base := now.AddDate(-age, 0, 0)
	return base.AddDate(0, 0, -randIntn(365)).Truncate(24 * time.Hour)
}

// wage generates a weekly wage between $400 and $3,000 with cents.
func (g *Generator) wage() string {
	return fmt.Sprintf("%d.%02d", 400+randIntn(2600), randIntn(100))
}

func (g *Generator) digits(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + randIntn(10))
	}
	return string(b)
}

// pick returns a random element from a string slice.
func pick(s []string) string {
	return s[randIntn(len(s))]
}

// randIntn returns a cryptographically random int in [0, n).
func randIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		// crypto/rand failure is unrecoverable
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
