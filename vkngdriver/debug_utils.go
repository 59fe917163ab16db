package vkngdriver

import (
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/hellotriangle/bootstrap"
)

func messengerCreateInfo(info bootstrap.MessengerCreateInfo) ext_debug_utils.DebugUtilsMessengerCreateInfo {
	callback := info.Callback
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: info.Severities,
		MessageType:     info.Types,
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			if callback == nil || data == nil {
				return false
			}
			return callback(severity, msgType, data.Message)
		},
	}
}

// debugUtils exposes the messenger entry points of debugDriver. A nil
// extension driver means the loader did not hand out the functions.
func debugUtils(debugDriver ext_debug_utils.ExtensionDriver) bootstrap.DebugUtils {
	if debugDriver == nil {
		return bootstrap.DebugUtils{}
	}

	return bootstrap.DebugUtils{
		Create: func(info bootstrap.MessengerCreateInfo) (bootstrap.MessengerID, error) {
			messenger, _, err := debugDriver.CreateDebugUtilsMessenger(nil, messengerCreateInfo(info))
			if err != nil {
				return nil, err
			}
			return messenger, nil
		},
		Destroy: func(id bootstrap.MessengerID) {
			messenger, ok := id.(ext_debug_utils.DebugUtilsMessenger)
			if !ok || !messenger.Initialized() {
				return
			}
			debugDriver.DestroyDebugUtilsMessenger(messenger, nil)
		},
	}
}
