package sdk

// Sender identifies the actor that signed the current message.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the execution environment snapshot for the message being handled.
// Timestamp is the block timestamp in milliseconds rendered as decimal text;
// Value is the native currency attached to the message, a decimal u128.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Value       string `json:"msg.value"`
	Sender      Sender `json:"msg.sender"`
}

// State is the key/value storage surface the contract runs against. The wasm
// build talks to host storage; other builds run against a mock or bolt store.
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}
