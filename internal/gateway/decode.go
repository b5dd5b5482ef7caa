package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
)

// decodeEnvelope 是响应信封的唯一判定点，Mock 路径和真实路径共用。
// 成功的判定：success 为 true，或 code 为 0/200，
// 或两个标识字段都不存在（没有错误标记即视为成功）。
// 成功时优先取 data 字段，没有 data 则返回整个响应体。
func decodeEnvelope(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, errors.New("响应数据解析失败")
	}

	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err != nil {
		// 合法 JSON 但不是对象（如数组），没有任何状态标识，按成功处理
		return json.RawMessage(body), nil
	}

	successRaw, hasSuccess := env["success"]
	codeRaw, hasCode := env["code"]

	ok := false
	if hasSuccess {
		var s bool
		if json.Unmarshal(successRaw, &s) == nil && s {
			ok = true
		}
	}
	if !ok && hasCode {
		var c float64
		if json.Unmarshal(codeRaw, &c) == nil && (c == 0 || c == 200) {
			ok = true
		}
	}
	if !ok && !hasSuccess && !hasCode {
		ok = true
	}

	if ok {
		if data, has := env["data"]; has {
			return data, nil
		}
		return json.RawMessage(body), nil
	}

	return nil, errors.New(failureMessage(env))
}

// failureMessage 按 error、message、msg 的顺序取第一个非空的错误文案。
func failureMessage(env map[string]json.RawMessage) string {
	for _, key := range []string{"error", "message", "msg"} {
		if raw, has := env[key]; has {
			var s string
			if json.Unmarshal(raw, &s) == nil && s != "" {
				return s
			}
		}
	}
	return "请求失败"
}

// protocolMessage 从非 2xx 响应中尽力提取可读的错误原因，
// 响应体解析不出来时用状态码拼一条通用文案。
func protocolMessage(status int, statusText string, body []byte) string {
	var env map[string]json.RawMessage
	if err := json.Unmarshal(body, &env); err == nil {
		for _, key := range []string{"msg", "error"} {
			if raw, has := env[key]; has {
				var s string
				if json.Unmarshal(raw, &s) == nil && s != "" {
					return s
				}
			}
		}
	}
	return fmt.Sprintf("请求失败: %d %s", status, statusText)
}
