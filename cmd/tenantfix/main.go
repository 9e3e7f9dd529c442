package main

import "tenantfix/cmd/tenantfix/cmd"

func main() {
	cmd.Execute()
}
