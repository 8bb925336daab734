package domain

// City is the location an outlet is opening in. The empty City means the
// outlet has not been assigned to a city.
type City string

// CityCatalog is the closed, ordered set of cities an outlet may be assigned to.
type CityCatalog []City

// Cities is the catalog used by the board.
var Cities = CityCatalog{
	"Bengaluru",
	"Mumbai",
	"Delhi",
	"Hyderabad",
	"Chennai",
	"Pune",
	"Kolkata",
}

// First returns the default city for new outlets, or "" for an empty catalog.
func (c CityCatalog) First() City {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// Contains reports whether city is a member of the catalog.
func (c CityCatalog) Contains(city City) bool {
	for _, v := range c {
		if v == city {
			return true
		}
	}
	return false
}

// Next returns the city after current, wrapping around. An unassigned or
// unknown city yields the first entry.
func (c CityCatalog) Next(current City) City {
	for i, v := range c {
		if v == current {
			return c[(i+1)%len(c)]
		}
	}
	return c.First()
}
