package commands

const (
	_etc = "/usr/local/etc/glossary-sync"
	_var = "/usr/local/var/glossary-sync"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CONFIG      = _etc + "/glossary-sync.yaml"
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
