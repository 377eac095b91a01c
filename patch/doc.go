// Package patch applies peripheral level patch commands to a device
// description.
//
// A patch file is a YAML mapping. Its delete key names peripherals to
// remove and its copy key maps a destination peripheral name to a source:
//
//	_svd: ../svd/stm32f0x2.svd
//	_delete:
//	  - TSC
//	_copy:
//	  DAC2:
//	    from: DAC1
//	  ADC:
//	    from: ../svd/stm32f0x1.svd:ADC
//
// Deletions are applied first, then copies in the order they are written.
// A copy keeps the registers of its source. When the destination already
// exists the copy takes over its base address and interrupts and replaces
// it; otherwise it keeps the source's base address and has no interrupts.
package patch
