package digest

import (
	"strings"

	"github.com/dmitrymomot/deadline/pkg/schedule"
)

// Digest is the grouped form of a list of alerts.
type Digest struct {
	Persons []PersonGroup
}

// PersonGroup holds the alerts of one responsible person.
type PersonGroup struct {
	Person string
	Brands []BrandGroup
}

// BrandGroup holds the alerts of one brand under a person.
type BrandGroup struct {
	Brand  string
	Alerts []schedule.Alert
}

// Empty reports whether the digest has no alerts.
func (d *Digest) Empty() bool {
	return d == nil || len(d.Persons) == 0
}

// Len returns the number of alerts in the digest.
func (d *Digest) Len() int {
	if d == nil {
		return 0
	}
	n := 0
	for _, p := range d.Persons {
		for _, b := range p.Brands {
			n += len(b.Alerts)
		}
	}
	return n
}

// Group builds a digest from alerts in input order.
// Blank person, brand and item values are replaced with placeholder.
func Group(alerts []schedule.Alert, placeholder string) *Digest {
	d := &Digest{}
	persons := make(map[string]int)
	brands := make(map[[2]string]int)

	for _, a := range alerts {
		a.Person = orPlaceholder(a.Person, placeholder)
		a.Brand = orPlaceholder(a.Brand, placeholder)
		a.Item = orPlaceholder(a.Item, placeholder)

		pi, ok := persons[a.Person]
		if !ok {
			pi = len(d.Persons)
			persons[a.Person] = pi
			d.Persons = append(d.Persons, PersonGroup{Person: a.Person})
		}

		p := &d.Persons[pi]
		key := [2]string{a.Person, a.Brand}
		bi, ok := brands[key]
		if !ok {
			bi = len(p.Brands)
			brands[key] = bi
			p.Brands = append(p.Brands, BrandGroup{Brand: a.Brand})
		}
		p.Brands[bi].Alerts = append(p.Brands[bi].Alerts, a)
	}

	return d
}

func orPlaceholder(s, placeholder string) string {
	if s = strings.TrimSpace(s); s == "" {
		return placeholder
	}
	return s
}
