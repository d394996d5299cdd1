package routeprofit

import "errors"

var ErrInvalidConfig = errors.New("invalid configuration")
var ErrTooManyRoutes = errors.New("route count exceeds distinct airport pairs on roster")
var ErrUnknownAirport = errors.New("airport not on roster")
var ErrUnknownAircraft = errors.New("aircraft type not in fleet")
var ErrInvalidRoute = errors.New("invalid route")
var ErrInvalidMonth = errors.New("month must be in 1..12")
// ErrMissingJoin is returned when a (route,month) has no matching record in an upstream table.
var ErrMissingJoin = errors.New("no upstream record for route and month")
