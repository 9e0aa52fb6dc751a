package cli

// Export internal functions for testing.

// RunLogin exports runLogin for testing.
var RunLogin = runLogin

// RunLogout exports runLogout for testing.
var RunLogout = runLogout

// RunWhoami exports runWhoami for testing.
var RunWhoami = runWhoami

// MaskToken exports maskToken for testing.
var MaskToken = maskToken

// ParseScope exports parseScope for testing.
var ParseScope = parseScope

// RunConfigSet exports runConfigSet for testing.
var RunConfigSet = runConfigSet

// RunConfigGet exports runConfigGet for testing.
var RunConfigGet = runConfigGet

// RunConfigList exports runConfigList for testing.
var RunConfigList = runConfigList

// IsValidConfigKey exports isValidConfigKey for testing.
var IsValidConfigKey = isValidConfigKey

// ValidConfigKeys exports validConfigKeys for testing.
var ValidConfigKeys = validConfigKeys

// BuyFuncs exports buyFuncs for testing.
var BuyFuncs = buyFuncs
