package controllers

// RenderTravelResult exports renderTravelResult for testing.
var RenderTravelResult = renderTravelResult //nolint:gochecknoglobals // test export
