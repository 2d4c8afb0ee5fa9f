// Package serviceorder provides the Order aggregate for ski-service registrations
// together with its priority and status value types.
//
// Key business rules:
//   - Priority is one of low, standard, express and decides the pickup offset
//     (12, 7 and 5 days after creation)
//   - The pickup date is always derived from the creation date and priority; it is
//     never supplied by a client
//   - Status is one of Offen, InBearbeitung, Abgeschlossen; any of the three may follow
//     any other, values outside the set are rejected
//   - Comments and status are changed independently of each other
package serviceorder
