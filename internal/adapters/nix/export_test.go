package nix

var (
	HostSystem = hostSystem
	SourceHost = sourceHost
)
