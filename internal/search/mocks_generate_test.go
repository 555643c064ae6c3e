package search

//go:generate mockgen -destination=mocks_test.go -package=$GOPACKAGE . Recorder
