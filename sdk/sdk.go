//go:build wasm

package sdk

import (
	"encoding/json"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the host console so we can trace contract steps.
// Example payload: sdk.Log("hello vault")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("corrupt state")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(&AbortError{Msg: msg})
}

// Revert throws a named error back to the caller with a short stable symbol.
// The host rolls back every state change made by the call.
// Example payload: sdk.Revert("grant not found", "grant_not_found")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(&RevertError{Msg: msg, Symbol: symbol})
}

// StateSetObject stores a key/value string pair into contract kv storage.
// Example payload: sdk.StateSetObject("count:grants", "5")
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
// Example payload: sdk.StateGetObject("count:grants")
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
// Example payload: sdk.StateDeleteObject("count:grants")
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
// Example payload: sdk.GetEnv()
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	if v, ok := envMap["contract.id"].(string); ok {
		env.ContractID = v
	}
	if v, ok := envMap["tx.id"].(string); ok {
		env.TxID = v
	}
	if v, ok := envMap["block.id"].(string); ok {
		env.BlockID = v
	}
	if v, ok := envMap["block.height"].(float64); ok {
		env.BlockHeight = uint64(v)
	}
	if v, ok := envMap["block.timestamp"].(string); ok {
		env.Timestamp = v
	}

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	sender := ""
	if v, ok := envMap["msg.sender"].(string); ok {
		sender = v
	}
	env.Sender = Sender{
		Address:       Address(sender),
		RequiredAuths: requiredAuths,
	}

	if rawIntents, ok := envMap["intents"]; ok {
		if b, err := json.Marshal(rawIntents); err == nil {
			json.Unmarshal(b, &env.Intents)
		}
	}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("block.timestamp")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}
