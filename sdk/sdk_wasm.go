//go:build tinygo

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func hostLog(s *string) *string

//go:wasmimport sdk db.set_object
func hostStateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func hostStateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func hostStateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func hostGetEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func hostGetEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func hostGetBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hostHiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hostHiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport env abort
func hostAbort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func hostRevert(msg, symbol *string)

// wasmHost forwards every Host call to the chain host functions.
type wasmHost struct{}

func init() {
	activeHost = wasmHost{}
}

func (wasmHost) Log(s string) {
	hostLog(&s)
}

func (wasmHost) StateSetObject(key string, value string) {
	hostStateSetObject(&key, &value)
}

func (wasmHost) StateGetObject(key string) *string {
	return hostStateGetObject(&key)
}

func (wasmHost) StateDeleteObject(key string) {
	hostStateDeleteObject(&key)
}

func (wasmHost) GetEnv() Env {
	envStr := *hostGetEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			requiredAuths = append(requiredAuths, Address(auth.(string)))
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			requiredPostingAuths = append(requiredPostingAuths, Address(auth.(string)))
		}
	}

	sender, _ := envMap["msg.sender"].(string)
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	return env
}

func (wasmHost) GetEnvKey(key string) *string {
	return hostGetEnvKey(&key)
}

func (wasmHost) GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *hostGetBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

func (wasmHost) HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hostHiveDraw(&amt, &as)
}

func (wasmHost) HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hostHiveTransfer(&toaddr, &amt, &as)
}

func (wasmHost) Abort(msg string) {
	ln := int32(0)
	hostAbort(&msg, nil, &ln, &ln)
	panic(msg)
}

func (wasmHost) Revert(msg string, symbol string) {
	hostRevert(&msg, &symbol)
	panic(symbol + ": " + msg)
}
