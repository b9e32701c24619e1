package integration_test

const (
	TestDeviceId      = "7d2c1f0e-3b4a-4c5d-8e9f-a0b1c2d3e4f5"
	OtherTestDeviceId = "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c5d"

	// Seeded catalog
	TestDestinationCount    = 4
	TestDestinationId       = 3
	TestDestinationName     = "Centro Histórico, Ouro Preto"
	TestDestinationContact  = "(31) 7766-5544"
	TestDestinationLikes    = 65
	TestDepartureLocation   = "Terminal Rodoviário, São Paulo"
	TestTripTotalSeats      = 20
	TestTripPrice           = "350"
	TestTripDurationDays    = 3
	TestUnavailableSeat     = 7
	TestAvailableSeat       = 5
	TestOtherAvailableSeat  = 6
	TestBookedTripSeat      = 5
	TestBookedTripStatus    = "confirmed"
	TestBookedTripStatusTxt = "Confirmada"
)
