package data

// DriverNames are given to the AI opponents, in grid order
var DriverNames = []string{
	"James", "Mary", "Robert", "Patricia", "Michael", "Jennifer", "William", "Linda",
	"David", "Elizabeth", "Richard", "Barbara", "Joseph", "Susan", "Thomas", "Jessica",
	"Charles", "Sarah", "Daniel", "Karen", "Matthew", "Nancy", "Anthony", "Lisa",
	"Mark", "Betty", "Paul", "Margaret", "Steven", "Sandra", "Andrew", "Ashley",
	"Kenneth", "Kimberly", "George", "Emily", "Joshua", "Donna", "Kevin", "Michelle",
	"Brian", "Dorothy", "Edward", "Carol", "Ronald", "Amanda", "Timothy", "Melissa",
	"Jason", "Deborah", "Jeffrey", "Stephanie", "Ryan", "Rebecca", "Jacob", "Laura",
}

// Drivers returns n names for race number race, starting further down the list each race
func Drivers(race, n int) []string {
	names := make([]string, n)
	if len(DriverNames) == 0 {
		return names
	}
	start := max(race*n, 0)
	for i := range names {
		names[i] = DriverNames[(start+i)%len(DriverNames)]
	}
	return names
}
