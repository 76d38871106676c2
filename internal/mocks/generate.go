// Package mocks provides mock implementations for testing.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks
// for the gateway port. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	gw := mocks.NewMockAuctionGateway(ctrl)
//	gw.EXPECT().Counts(gomock.Any(), gomock.Any(), gomock.Any()).Return(counts, nil)
package mocks

// Generate mock for AuctionGateway interface from internal/ports.
// This creates MockAuctionGateway with methods for every backend endpoint
// the service consumes.
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=auction_gateway_mock.go github.com/lotview/auction-ui-api/internal/ports AuctionGateway
