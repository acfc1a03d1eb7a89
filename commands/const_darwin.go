package commands

const (
	_etc = "/usr/local/etc/io.datasteward"
	_var = "/usr/local/var/io.datasteward"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CONFIG      = _etc + "/glossary-sync/glossary-sync.yaml"
	DEFAULT_CREDENTIALS = _etc + "/glossary-sync/.google/credentials.json"
)
