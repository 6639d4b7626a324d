package postgres

import "github.com/f1tipp/F1Tipp_Go/internal/domain"

// Driver slots are stored as nullable integers; DriverNone maps to NULL so
// partial predictions do not masquerade as guesses for driver number zero.

func driverToDB(d domain.DriverID) *int {
	if !d.Set() {
		return nil
	}
	n := int(d)
	return &n
}

func driverFromDB(n *int) domain.DriverID {
	if n == nil {
		return domain.DriverNone
	}
	return domain.DriverID(*n)
}

func constructorToDB(c domain.ConstructorID) *string {
	if c == "" {
		return nil
	}
	s := string(c)
	return &s
}

func constructorFromDB(s *string) domain.ConstructorID {
	if s == nil {
		return ""
	}
	return domain.ConstructorID(*s)
}

func bucketToDB(b domain.DNFBucket) *string {
	if b == domain.DNFBucketNone {
		return nil
	}
	s := string(b)
	return &s
}

func bucketFromDB(s *string) domain.DNFBucket {
	if s == nil {
		return domain.DNFBucketNone
	}
	return domain.DNFBucket(*s)
}
